package assets

import (
	"context"
	"errors"
	"intake-report-service/internal/app/config"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingFetcher struct {
	calls   int64
	failing map[string]bool
}

func (f *countingFetcher) FetchBinary(ctx context.Context, url string) ([]byte, error) {
	atomic.AddInt64(&f.calls, 1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.failing[url] {
		return nil, errors.New("fetch failed")
	}
	return []byte("data for " + url), nil
}

func testAssetConfig() config.Assets {
	return config.Assets{
		BodyFontRegularURL: "font/body-regular",
		BodyFontBoldURL:    "font/body-bold",
		RTLFontRegularURL:  "font/rtl-regular",
		RTLFontBoldURL:     "font/rtl-bold",
		HeaderGraphicURL:   "gfx/header",
		FooterGraphicURL:   "gfx/footer",
		TopBannerURL:       "gfx/top-banner",
		BottomBannerURL:    "gfx/bottom-banner",
	}
}

func TestCacheEnsureFetchesEachAssetOnce(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := NewCache(testAssetConfig(), fetcher, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cache.Ensure(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8), atomic.LoadInt64(&fetcher.calls))
	assert.NotEmpty(t, cache.Font(FontBodyRegular))
	assert.NotEmpty(t, cache.Graphic(GraphicTopBanner))
}

func TestCacheEnsureFailsWhenFontUnavailable(t *testing.T) {
	fetcher := &countingFetcher{failing: map[string]bool{"font/rtl-bold": true}}
	cache := NewCache(testAssetConfig(), fetcher, zap.NewNop())

	err := cache.Ensure(context.Background())
	assert.Error(t, err)

	// The failure is cached too; later calls do not refetch.
	callsAfterFirst := atomic.LoadInt64(&fetcher.calls)
	assert.Error(t, cache.Ensure(context.Background()))
	assert.Equal(t, callsAfterFirst, atomic.LoadInt64(&fetcher.calls))
}

func TestCacheEnsureRetriesAfterCanceledRequest(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := NewCache(testAssetConfig(), fetcher, zap.NewNop())

	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first request dying mid-load must not poison the cache for
	// everyone after it.
	assert.Error(t, cache.Ensure(canceledCtx))

	assert.NoError(t, cache.Ensure(context.Background()))
	assert.NotEmpty(t, cache.Font(FontBodyRegular))
	assert.NotEmpty(t, cache.Graphic(GraphicHeader))
}

func TestCacheEnsureToleratesMissingGraphics(t *testing.T) {
	fetcher := &countingFetcher{failing: map[string]bool{"gfx/bottom-banner": true}}
	cache := NewCache(testAssetConfig(), fetcher, zap.NewNop())

	assert.NoError(t, cache.Ensure(context.Background()))
	assert.Nil(t, cache.Graphic(GraphicBottomBanner))
	assert.NotEmpty(t, cache.Graphic(GraphicHeader))
}
