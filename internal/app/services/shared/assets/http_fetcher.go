package assets

import (
	"context"
	"fmt"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"time"
)

type httpFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() contracts.AssetFetcher {
	return &httpFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *httpFetcher) FetchBinary(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrAssetFetch(err, url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrAssetFetch(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrAssetFetch(fmt.Errorf("unexpected status %d", resp.StatusCode), url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrAssetFetch(err, url)
	}

	return data, nil
}
