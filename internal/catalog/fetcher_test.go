package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"veluxe-store/internal/api"
	"veluxe-store/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := api.New(api.Config{BaseURL: srv.URL, Session: session.New()})
	require.NoError(t, err)
	return c
}

func productList(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = Product{ID: int64(i + 1), Name: "P", Price: 100}
	}
	return out
}

func TestPage_TotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"No results", 0, 15, 0},
		{"Exact multiple", 30, 15, 2},
		{"Remainder rounds up", 31, 15, 3},
		{"Single short page", 7, 15, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Page{Current: 1, Size: tc.size, Total: tc.total}
			assert.Equal(t, tc.want, p.TotalPages())
		})
	}
}

func TestFetcher_FetchPage(t *testing.T) {
	t.Run("Success replaces state", func(t *testing.T) {
		var gotReq listRequest
		client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/products/all-products", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(listResponse{Products: productList(15), TotalProducts: 45})
		}))
		f := NewFetcher(client)
		filters := NewFilterState()
		filters.ToggleCategory(2)

		res, err := f.FetchPage(context.Background(), 2, 15, filters)

		require.NoError(t, err)
		assert.Len(t, res.Items, 15)
		assert.Equal(t, 3, res.Page.TotalPages())
		assert.Equal(t, 2, gotReq.Page)
		assert.Equal(t, 15, gotReq.PerPage)
		assert.Equal(t, []int64{2}, gotReq.Filter.Category)
		assert.Equal(t, res.Items, f.Items())
	})

	t.Run("Never returns more than pageSize items", func(t *testing.T) {
		client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(listResponse{Products: productList(20), TotalProducts: 20})
		}))
		f := NewFetcher(client)

		res, err := f.FetchPage(context.Background(), 1, 15, NewFilterState())

		require.NoError(t, err)
		assert.Len(t, res.Items, 15)
	})

	t.Run("Invalid page arguments", func(t *testing.T) {
		f := NewFetcher(nil)

		_, err := f.FetchPage(context.Background(), 0, 15, NewFilterState())
		assert.ErrorIs(t, err, ErrInvalidPage)

		_, err = f.FetchPage(context.Background(), 1, 0, NewFilterState())
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("Failure leaves prior state untouched", func(t *testing.T) {
		fail := false
		client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if fail {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(listResponse{Products: productList(5), TotalProducts: 5})
		}))
		f := NewFetcher(client)

		_, err := f.FetchPage(context.Background(), 1, 15, NewFilterState())
		require.NoError(t, err)

		fail = true
		_, err = f.FetchPage(context.Background(), 2, 15, NewFilterState())

		assert.Error(t, err)
		assert.Len(t, f.Items(), 5)
		assert.Equal(t, 1, f.Page().Current)
	})

	t.Run("Superseded response is discarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		slowFirst := true
		client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req listRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Page == 1 && slowFirst {
				slowFirst = false
				close(started)
				<-release
			}
			json.NewEncoder(w).Encode(listResponse{
				Products:      productList(req.Page),
				TotalProducts: 40,
			})
		}))
		f := NewFetcher(client)

		firstDone := make(chan error, 1)
		go func() {
			_, err := f.FetchPage(context.Background(), 1, 15, NewFilterState())
			firstDone <- err
		}()

		// Wait until the first request is in flight, then supersede it.
		<-started
		_, err := f.FetchPage(context.Background(), 2, 15, NewFilterState())
		require.NoError(t, err)
		close(release)

		// The slow page-1 response must not clobber the page-2 state.
		assert.ErrorIs(t, <-firstDone, ErrSuperseded)
		assert.Equal(t, 2, f.Page().Current)
		assert.Len(t, f.Items(), 2)
	})

	t.Run("Reset drops filters and cached result", func(t *testing.T) {
		client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(listResponse{Products: productList(5), TotalProducts: 5})
		}))
		f := NewFetcher(client)
		filters := NewFilterState()
		filters.ToggleCategory(2)
		filters.ToggleRating(4)

		_, err := f.FetchPage(context.Background(), 2, 15, filters)
		require.NoError(t, err)

		f.Reset(filters)

		assert.False(t, filters.HasCategory(2))
		assert.False(t, filters.HasRating(4))
		assert.Empty(t, f.Items())
		assert.Equal(t, 1, f.Page().Current)
	})
}

func TestService_Lookups(t *testing.T) {
	client := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/category":
			w.Write([]byte(`[{"cate_id":1,"cate_name":"Kitchen"}]`))
		case "/api/subcategory":
			w.Write([]byte(`[{"sub_cate_id":4,"cate_id":1,"sub_cate_name":"Degreasers"}]`))
		case "/api/products/9":
			w.Write([]byte(`{"id":9,"name":"Glass Cleaner","price":249.5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	svc := NewService(client)
	ctx := context.Background()

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Kitchen", cats[0].Name)

	subs, err := svc.Subcategories(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(1), subs[0].CategoryID)

	p, err := svc.Product(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Glass Cleaner", p.Name)
	assert.Equal(t, 249.5, p.Price)
}
