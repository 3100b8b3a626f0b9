package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarfaisal/snapshop/internal/models"
)

func TestClientSetsRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[],"total":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL,
		WithTokenSource(NewTokenStore("tok")),
		WithTenant(func() string { return "shop1" }),
	)

	_, err := c.GetProducts(context.Background(), ProductListParams{})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "web", got.Get("X-Request-Source"))
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "shop1", got.Get("X-Tenant"))
}

func TestClientStripsBearerPrefixFromToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(NewTokenStore("Bearer tok")))

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", auth)
}

func TestClientOmitsAuthWhenAnonymous(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(NewTokenStore("")))

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get("X-Tenant"))
}

func TestClientUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer srv.Close()

	tokens := NewTokenStore("stale")
	fired := 0
	c := NewClient(srv.URL,
		WithTokenSource(tokens),
		WithAuthFailureHandler(func() { fired++ }),
	)

	_, err := c.Me(context.Background())

	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Token expired", apiErr.Message)

	assert.Empty(t, tokens.Token())
	assert.Equal(t, 1, fired)
}

func TestClientDecodesStructuredFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation failed","errors":[{"path":"variants.0.price","message":"Required"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.AddProduct(context.Background(), models.CreateProductRequest{Name: "Shirt"})

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Validation failed", apiErr.Message)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "variants.0.price", apiErr.Errors[0].Path)
	assert.Equal(t, "Required", apiErr.Errors[0].Message)
}

func TestClientNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.Me(context.Background())

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClientQueryEncoding(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"products":[],"total":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.GetProducts(context.Background(), ProductListParams{Page: 2, Limit: 10, Search: "blue shirt"})
	require.NoError(t, err)
	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "limit=10")
	assert.Contains(t, query, "search=blue+shirt")
}

func TestTokenStore(t *testing.T) {
	ts := NewTokenStore("a")
	assert.Equal(t, "a", ts.Token())

	ts.Set("b")
	assert.Equal(t, "b", ts.Token())

	ts.Clear()
	assert.Empty(t, ts.Token())
}

func TestUploadFileStreamsMultipartAndReportsProgress(t *testing.T) {
	var (
		filename string
		content  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		filename = header.Filename
		buf := make([]byte, header.Size+16)
		n, _ := file.Read(buf)
		content = string(buf[:n])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"File uploaded successfully","fileUrl":"https://cdn.test/a.jpg","fileType":"image"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	data := "fake image bytes"
	var reports []int
	resp, err := c.UploadFile(context.Background(), "a.jpg", strings.NewReader(data), int64(len(data)), func(pct int) {
		reports = append(reports, pct)
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.jpg", resp.FileURL)
	assert.Equal(t, "image", resp.FileType)
	assert.Equal(t, "a.jpg", filename)
	assert.Equal(t, data, content)

	require.NotEmpty(t, reports)
	assert.Equal(t, 100, reports[len(reports)-1])
	for _, pct := range reports {
		assert.LessOrEqual(t, pct, 100)
		assert.GreaterOrEqual(t, pct, 0)
	}
}

func TestUploadFileServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"unsupported file type"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.UploadFile(context.Background(), "a.exe", strings.NewReader("x"), 1, nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "unsupported file type", apiErr.Message)
}
