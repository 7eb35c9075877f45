package assets

import (
	"context"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

// Font asset names as embedded into generated documents.
const (
	FontBodyRegular = "BodyRegular"
	FontBodyBold    = "BodyBold"
	FontRTLRegular  = "RTLRegular"
	FontRTLBold     = "RTLBold"
)

// Cache fetches the fonts and decorative graphics once and keeps the raw
// bytes for every subsequent document build. Fonts are required; a failed
// font fetch fails Ensure. Graphics degrade gracefully: a failed fetch is
// logged and the document is built without that graphic.
type Cache struct {
	cfg     config.Assets
	fetcher contracts.AssetFetcher
	log     *zap.Logger

	mu     sync.Mutex
	loaded bool
	err    error

	fonts    map[string][]byte
	graphics map[string][]byte
}

// Graphic asset names.
const (
	GraphicHeader       = "Header"
	GraphicFooter       = "Footer"
	GraphicTopBanner    = "TopBanner"
	GraphicBottomBanner = "BottomBanner"
)

func NewCache(cfg config.Assets, fetcher contracts.AssetFetcher, log *zap.Logger) *Cache {
	return &Cache{
		cfg:      cfg,
		fetcher:  fetcher,
		log:      log,
		fonts:    make(map[string][]byte),
		graphics: make(map[string][]byte),
	}
}

// Ensure populates the cache. It is safe to call from concurrent request
// handlers; one load runs at a time and a completed load is never repeated.
// A load cut short by the caller's context does not count as completed, so
// the next request retries instead of inheriting the cancellation.
func (c *Cache) Ensure(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.err
	}

	err := c.load(ctx)
	if err != nil && ctx.Err() != nil {
		return err
	}

	c.loaded = true
	c.err = err
	return err
}

func (c *Cache) load(ctx context.Context) error {
	requiredFonts := map[string]string{
		FontBodyRegular: c.cfg.BodyFontRegularURL,
		FontBodyBold:    c.cfg.BodyFontBoldURL,
		FontRTLRegular:  c.cfg.RTLFontRegularURL,
		FontRTLBold:     c.cfg.RTLFontBoldURL,
	}
	for name, url := range requiredFonts {
		if c.fonts[name] != nil {
			continue
		}
		data, err := c.fetcher.FetchBinary(ctx, url)
		if err != nil {
			return exceptions.ErrAssetFontLoad(err, name)
		}
		c.fonts[name] = data
	}

	optionalGraphics := map[string]string{
		GraphicHeader:       c.cfg.HeaderGraphicURL,
		GraphicFooter:       c.cfg.FooterGraphicURL,
		GraphicTopBanner:    c.cfg.TopBannerURL,
		GraphicBottomBanner: c.cfg.BottomBannerURL,
	}
	for name, url := range optionalGraphics {
		if c.graphics[name] != nil {
			continue
		}
		data, err := c.fetcher.FetchBinary(ctx, url)
		if err != nil {
			c.log.Warn("optional graphic unavailable, documents will omit it",
				zap.String("asset", name),
				zap.Error(err),
			)
			continue
		}
		c.graphics[name] = data
	}

	return nil
}

// Font returns the cached font bytes. Ensure must have succeeded first.
func (c *Cache) Font(name string) []byte {
	return c.fonts[name]
}

// Graphic returns the cached graphic bytes, or nil when the fetch failed
// and the document should omit it.
func (c *Cache) Graphic(name string) []byte {
	return c.graphics[name]
}
