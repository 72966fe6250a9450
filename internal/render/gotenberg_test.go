package render_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/render"
)

func TestRenderHTMLPostsMultipart(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		buf := new(strings.Builder)
		_, err = io.Copy(buf, file)
		require.NoError(t, err)
		gotBody = buf.String()
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	client := render.NewGotenbergClient(srv.URL)
	pdf, err := client.RenderHTML(context.Background(), "<html><body>hi</body></html>")

	require.NoError(t, err)
	assert.Equal(t, "/forms/chromium/convert/html", gotPath)
	assert.Contains(t, gotBody, "<body>hi</body>")
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
}

func TestRenderHTMLRetriesTransientFailures(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("pdf"))
	}))
	defer srv.Close()

	client := render.NewGotenbergClient(srv.URL)
	pdf, err := client.RenderHTML(context.Background(), "<html></html>")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []byte("pdf"), pdf)
}

func TestRenderHTMLReportsPersistentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := render.NewGotenbergClient(srv.URL)
	_, err := client.RenderHTML(context.Background(), "<html></html>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := render.NewGotenbergClient(srv.URL)
	assert.NoError(t, client.Ping(context.Background()))
}
