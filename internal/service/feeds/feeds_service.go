package feeds

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

// Service refreshes the WHO export directory from a published index
// page: every CSV link on the page is downloaded into the data dir,
// overwriting the previous snapshot of that file.
type Service struct {
	client   *resty.Client
	indexURL string
	dataDir  string
}

func NewFeedsService(indexURL, dataDir string) *Service {
	return &Service{
		client:   resty.New().SetTimeout(2 * time.Minute),
		indexURL: indexURL,
		dataDir:  dataDir,
	}
}

// FileResult is one downloaded file of a refresh.
type FileResult struct {
	File  string `json:"file"`
	Bytes int    `json:"bytes"`
	Error string `json:"error,omitempty"`
}

// Refresh fetches the index page, collects its CSV links and downloads
// them concurrently. One failed download is recorded in its result and
// never aborts the rest; partial snapshots of individual files are
// never left behind.
func (s *Service) Refresh(ctx context.Context) ([]FileResult, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.indexURL)
	if err != nil {
		return nil, fmt.Errorf("get index page: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("index page status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	links := make([]string, 0, 32)
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if ok && strings.HasSuffix(strings.ToLower(href), ".csv") {
			links = append(links, href)
		}
	})

	if err = os.MkdirAll(s.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir data dir: %w", err)
	}

	results := make([]FileResult, 0, len(links))
	resultsMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, link := range links {
		link := link
		eg.Go(func() error {
			name := filepath.Base(link)
			result := FileResult{File: name}

			n, err := s.download(egCtx, link, name)
			if err != nil {
				logger.Errorf(egCtx, "download %s: %s", name, err.Error())
				result.Error = err.Error()
			} else {
				logger.Infof(egCtx, "refreshed %s (%d bytes)", name, n)
				result.Bytes = n
			}

			resultsMx.Lock()
			defer resultsMx.Unlock()
			results = append(results, result)
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return results, nil
}

func (s *Service) download(ctx context.Context, link, name string) (int, error) {
	if !strings.HasPrefix(link, "http") {
		link = strings.TrimRight(s.indexURL, "/") + "/" + strings.TrimLeft(link, "/")
	}

	var body []byte
	err := backoff.Retry(
		func() error {
			resp, httpErr := s.client.R().SetContext(ctx).Get(link)
			if httpErr != nil {
				return fmt.Errorf("http get: %w", httpErr)
			}
			if resp.StatusCode() != 200 {
				return fmt.Errorf("status code error: %d", resp.StatusCode())
			}

			body = resp.Body()
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return 0, err
	}

	// Write to a temp name first so readers never see a half-written CSV.
	target := filepath.Join(s.dataDir, name)
	tmp := target + ".tmp"
	if err = os.WriteFile(tmp, body, 0o644); err != nil {
		return 0, fmt.Errorf("write file: %w", err)
	}
	if err = os.Rename(tmp, target); err != nil {
		return 0, fmt.Errorf("rename file: %w", err)
	}

	return len(body), nil
}
