package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestArchiveResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/raid/champions/kael/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<html>" + r.URL.Path + "</html>"))
	}))
	defer server.Close()

	output, err := NewFilesystemOutput(filepath.Join(t.TempDir(), "pages"))
	require.NoError(t, err)

	client := resty.New().SetBaseURL(server.URL)
	ArchiveResponses(client, output, nil)

	_, err = client.R().Get("/raid/champions/ninja/")
	require.NoError(t, err)
	_, err = client.R().Get("/raid/champions/kael/")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(output.Dir(), "ninja.html"))
	require.NoError(t, err)
	require.Equal(t, "<html>/raid/champions/ninja/</html>", string(contents))

	_, err = os.Stat(filepath.Join(output.Dir(), "kael.html"))
	require.True(t, os.IsNotExist(err))
}
