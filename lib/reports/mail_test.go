package reports

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestAttachmentName(t *testing.T) {
	require.Equal(t, "top-dungeons-spider", attachmentName("Top Dungeons - Spider"))
	require.Equal(t, "report", attachmentName("  "))
}

func TestMailerSend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping smtp container in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*2)
	defer cancel()

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	smtpServer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "haravich/fake-smtp-server",
			ExposedPorts: []string{"1025/tcp", "1080/tcp"},
			WaitingFor:   wait.ForLog("smtp://0.0.0.0:1025"),
		},
	})
	if err != nil {
		t.Skipf("no container runtime available: %v", err)
	}
	t.Cleanup(func() {
		smtpServer.Terminate(context.Background())
	})

	host, err := smtpServer.Host(ctx)
	require.NoError(t, err)
	smtpPort, err := smtpServer.MappedPort(ctx, "1025")
	require.NoError(t, err)
	webPort, err := smtpServer.MappedPort(ctx, "1080")
	require.NoError(t, err)

	var port int
	_, err = fmt.Sscan(smtpPort.Port(), &port)
	require.NoError(t, err)

	mailer := NewMailer(SmtpConfig{
		Server:       host,
		Port:         port,
		EmailAddress: "reports@raid.test",
		Password:     "default",
	})
	err = mailer.Send(
		ctx,
		[]string{"bob@raid.test"},
		"Weekly leaderboard",
		[]Table{Leaderboard(testRecords(), "Dungeons", "Spider", 3)},
		FormatCSV,
	)
	require.NoError(t, err)

	res, err := resty.New().R().
		SetContext(ctx).
		Get(fmt.Sprintf("http://%s:%s/messages/1.plain", host, webPort.Port()))
	require.NoError(t, err)
	require.Contains(t, res.String(), "Arbiter")
}
