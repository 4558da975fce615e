package httputils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchText(t *testing.T) {
	const body = "free  energy   TOTEN  =      -12.345678 eV\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 0)

	text, err := f.FetchText(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, body, text)
}

func TestFetcher_FetchText_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 0)

	_, err := f.FetchText(srv.URL + "/missing.out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected response")
}
