package hellhades

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"raidchampions/lib/pagecache"
	"raidchampions/lib/restyutil"
	"raidchampions/lib/telemetry"
	"raidchampions/lib/textutil"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://hellhades.com"

// PageSource returns the rendered champion page for a name, or
// ErrPageUnavailable.
type PageSource interface {
	Page(ctx context.Context, name string) (string, error)
}

type Client struct {
	Http  *resty.Client
	cache pagecache.Cache
}

type ClientOptions struct {
	BaseUrl string
	Timeout time.Duration
	// optional
	Cache pagecache.Cache
	// optional, receives every fetched page as <slug>.html
	Archive restyutil.Output
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "raidchampions.lib.scrapers.hellhades/http")
	restyutil.ArchiveResponses(client, opts.Archive, restyutil.PathName)

	return &Client{Http: client, cache: opts.Cache}
}

func championPath(name string) string {
	return fmt.Sprintf("/raid/champions/%s/", textutil.Slug(name))
}

// checkPage rejects pages that do not describe a champion.
func checkPage(page string) error {
	if strings.Contains(page, "Page not found") {
		return fmt.Errorf("%w: page not found", ErrPageUnavailable)
	}
	if !strings.Contains(page, "raid-ratings-list") {
		return fmt.Errorf("%w: ratings have not been rendered", ErrPageUnavailable)
	}
	return nil
}

func (c *Client) Page(ctx context.Context, name string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Page")
	defer span.End()

	endpoint := championPath(name)
	span.SetAttributes(attribute.String("url", endpoint))

	if c.cache != nil {
		page, err := c.cache.Get(ctx, endpoint)
		if err == nil {
			span.SetStatus(codes.Ok, "CACHE HIT")
			return page, nil
		}
		if !errors.Is(err, pagecache.ErrPageNotFound) {
			span.RecordError(err)
		}
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return "", fmt.Errorf("%w: %s", ErrPageUnavailable, err.Error())
	}
	if res.StatusCode() == http.StatusNotFound {
		span.SetStatus(codes.Error, "page not found")
		return "", fmt.Errorf("%w: page not found", ErrPageUnavailable)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "unexpected status")
		return "", fmt.Errorf("%w: unexpected status %s", ErrPageUnavailable, res.Status())
	}

	page := res.String()
	err = checkPage(page)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	if c.cache != nil {
		err = c.cache.Set(ctx, endpoint, page)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to cache page")
		}
	}
	return page, nil
}

// DirSource reads pages that were rendered ahead of time, one
// "<slug>.html" file per champion.
type DirSource struct {
	Dir string
}

func (s DirSource) Page(ctx context.Context, name string) (string, error) {
	path := filepath.Join(s.Dir, textutil.Slug(name)+".html")
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: no file at %s", ErrPageUnavailable, path)
	}
	if err != nil {
		return "", err
	}
	page := string(contents)
	err = checkPage(page)
	if err != nil {
		return "", err
	}
	return page, nil
}
