package catalog

import (
	"context"
	"sync"

	"veluxe-store/internal/api"
	"veluxe-store/internal/logger"

	"go.uber.org/zap"
)

// DefaultPageSize matches the product grid screens.
const DefaultPageSize = 15

// Fetcher retrieves filtered catalog slices and owns the page bookkeeping
// for one listing screen. A fetch that fails, or that was superseded by a
// newer one, never disturbs the last good result.
type Fetcher struct {
	client     *api.Client
	combosOnly bool

	mu    sync.Mutex
	gen   uint64
	items []Product
	page  Page
}

// NewFetcher creates a fetcher over the all-products listing.
func NewFetcher(client *api.Client) *Fetcher {
	return &Fetcher{client: client}
}

// NewComboFetcher creates a fetcher that only lists combo products.
func NewComboFetcher(client *api.Client) *Fetcher {
	return &Fetcher{client: client, combosOnly: true}
}

// FetchPage retrieves one page of products matching filters. The returned
// result replaces the fetcher's current state unless a newer FetchPage
// started in the meantime, in which case the response is dropped and
// ErrSuperseded is returned.
func (f *Fetcher) FetchPage(ctx context.Context, page, pageSize int, filters *FilterState) (PageResult, error) {
	if page < 1 {
		return PageResult{}, ErrInvalidPage
	}
	if pageSize <= 0 {
		return PageResult{}, ErrInvalidPageSize
	}

	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	req := listRequest{
		Page:    page,
		PerPage: pageSize,
		Filter:  toPayload(filters, f.combosOnly),
	}

	var resp listResponse
	if err := f.client.Post(ctx, "/api/products/all-products", req, &resp); err != nil {
		logger.FromCtx(ctx).Warn("catalog fetch failed",
			zap.Int("page", page),
			zap.Error(err))
		return PageResult{}, err
	}

	items := resp.Products
	if len(items) > pageSize {
		items = items[:pageSize]
	}
	result := PageResult{
		Items: items,
		Page:  Page{Current: page, Size: pageSize, Total: resp.TotalProducts},
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// A newer fetch started while this one was in flight.
		return PageResult{}, ErrSuperseded
	}
	f.items = result.Items
	f.page = result.Page
	return result, nil
}

// Reset clears the filters and drops the cached result, returning the
// screen to page 1. In-flight fetches become superseded.
func (f *Fetcher) Reset(filters *FilterState) {
	filters.Clear()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.items = nil
	f.page = Page{Current: 1}
}

// Items returns the last successfully fetched slice.
func (f *Fetcher) Items() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items
}

// Page returns the bookkeeping of the last successful fetch.
func (f *Fetcher) Page() Page {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Service exposes the read-only catalog lookups around the listing screens.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Categories lists every category for the filter sidebar.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := s.client.Get(ctx, "/api/category", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subcategories lists every subcategory; callers scope them to the
// selected categories.
func (s *Service) Subcategories(ctx context.Context) ([]Subcategory, error) {
	var out []Subcategory
	if err := s.client.Get(ctx, "/api/subcategory", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single product detail page.
func (s *Service) Product(ctx context.Context, id int64) (*Product, error) {
	var out Product
	if err := s.client.Get(ctx, "/api/products/"+formatID(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
