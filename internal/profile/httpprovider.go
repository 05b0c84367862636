package profile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/singhsaravjit/portfolio-assistant/internal/observability"
)

// SectionCache is an optional read-through cache of raw section JSON.
// A miss is (nil, nil). Implemented by redisstore.Store.
type SectionCache interface {
	GetSection(ctx context.Context, name string) ([]byte, error)
	SetSection(ctx context.Context, name string, raw []byte) error
}

// HTTPProvider fetches the six section documents from the portfolio
// site's data endpoints (<base>/<section>). Each fetch is independent:
// a failing section is logged and left nil, never fatal.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	cache   SectionCache
}

func NewHTTPProvider(baseURL string, cache SectionCache) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

func (p *HTTPProvider) Load(ctx context.Context) (Snapshot, error) {
	log := observability.LoggerFromContext(ctx)

	raws := make([][]byte, len(SectionNames))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range SectionNames {
		g.Go(func() error {
			raw, err := p.fetchSection(gctx, name)
			if err != nil {
				log.Warn("profile section fetch failed", "section", name, "error", err)
				return nil
			}
			raws[i] = raw
			return nil
		})
	}
	// goroutines only return nil; Wait is for joining.
	_ = g.Wait()

	var snap Snapshot
	loaded := 0
	for i, name := range SectionNames {
		if raws[i] == nil {
			continue
		}
		if err := DecodeSection(&snap, name, raws[i]); err != nil {
			log.Warn("profile section malformed", "section", name, "error", err)
			continue
		}
		loaded++
	}
	if loaded == 0 {
		return snap, fmt.Errorf("no profile sections could be loaded from %s", p.baseURL)
	}
	return snap, nil
}

func (p *HTTPProvider) fetchSection(ctx context.Context, name string) ([]byte, error) {
	if p.cache != nil {
		if raw, err := p.cache.GetSection(ctx, name); err == nil && raw != nil {
			return raw, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.SetSection(ctx, name, raw); err != nil {
			observability.LoggerFromContext(ctx).Warn("profile cache write failed", "section", name, "error", err)
		}
	}
	return raw, nil
}
