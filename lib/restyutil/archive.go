package restyutil

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

type Output interface {
	Write(id string, contents string)
}

// FilesystemOutput writes every entry to its own file in a directory.
type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Dir() string {
	return o.directory
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0644)
	if err != nil {
		slog.Warn("failed to write archive file", "id", id, "err", err)
	}
}

// PathName names a response after the last segment of its request path,
// "/raid/champions/ninja/" becomes "ninja.html".
func PathName(res *resty.Response) string {
	p := res.Request.URL
	if res.Request.RawRequest != nil {
		p = res.Request.RawRequest.URL.Path
	}
	base := path.Base(strings.TrimSuffix(p, "/"))
	if base == "." || base == "/" || base == "" {
		base = "index"
	}
	return fmt.Sprintf("%s.html", base)
}

// ArchiveResponses hands the body of every successful response to output,
// name decides the id it is stored under.
func ArchiveResponses(client *resty.Client, output Output, name func(res *resty.Response) string) {
	if output == nil {
		return
	}
	if name == nil {
		name = PathName
	}
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		if !res.IsSuccess() {
			return nil
		}
		output.Write(name(res), res.String())
		return nil
	})
}
