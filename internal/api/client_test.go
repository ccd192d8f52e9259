package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veluxe-store/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	c, err := New(Config{BaseURL: srv.URL, Session: sess})
	require.NoError(t, err)
	return c, sess
}

func TestNew(t *testing.T) {
	t.Run("Missing base URL", func(t *testing.T) {
		_, err := New(Config{Session: session.New()})
		assert.Error(t, err)
	})

	t.Run("Missing session", func(t *testing.T) {
		_, err := New(Config{BaseURL: "http://localhost"})
		assert.Error(t, err)
	})

	t.Run("Trailing slash trimmed", func(t *testing.T) {
		c, err := New(Config{BaseURL: "http://localhost:5000/", Session: session.New()})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", c.BaseURL())
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("Decodes JSON body", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/category", r.URL.Path)
			w.Write([]byte(`[{"name":"Kitchen"}]`))
		}))

		var out []struct {
			Name string `json:"name"`
		}
		err := c.Get(context.Background(), "/api/category", &out)

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Kitchen", out[0].Name)
	})

	t.Run("Bearer token attached when present", func(t *testing.T) {
		var gotAuth string
		c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		sess.SetCredentials("u1", "tok-123")

		err := c.Get(context.Background(), "/api/cart/get/u1", nil)

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("No auth header for anonymous requests", func(t *testing.T) {
		var gotAuth string
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))

		err := c.Get(context.Background(), "/api/products", nil)

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"Not found", 404, `{"message":"no such product"}`, ErrNotFound, "no such product"},
		{"Unauthorized", 401, `{"error":"token expired"}`, ErrUnauthorized, "token expired"},
		{"Server error", 500, `{"details":"boom"}`, ErrServer, "boom"},
		{"Bad request", 400, `{}`, ErrInvalidRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))

			err := c.Get(context.Background(), "/api/x", nil)

			require.Error(t, err)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Message)
			assert.True(t, errors.Is(err, tc.sentinel))
		})
	}
}

func TestClient_ErrorMessagePreference(t *testing.T) {
	// details wins over error wins over message.
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		w.Write([]byte(`{"message":"m","error":"e","details":"d"}`))
	}))

	err := c.Post(context.Background(), "/api/order/create", map[string]string{}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "d", apiErr.Message)
}

func TestClient_PostForm(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Glass Cleaner", r.FormValue("name"))
		assert.Equal(t, []string{"streak free", "fast drying"}, r.MultipartForm.Value["features"])

		f, hdr, err := r.FormFile("images")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "front.png", hdr.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1"}`))
	}))

	form := NewForm().
		Set("name", "Glass Cleaner").
		SetAll("features", []string{"streak free", "fast drying"}).
		File("images", "front.png", strings.NewReader("png-bytes"))

	var out struct {
		ID string `json:"id"`
	}
	err := c.PostForm(context.Background(), "/api/products", form, &out)

	require.NoError(t, err)
	assert.Equal(t, "p1", out.ID)
}

func TestClient_TransportError(t *testing.T) {
	sess := session.New()
	c, err := New(Config{BaseURL: "http://127.0.0.1:1", Session: sess})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/products", nil)

	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
