package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestGZip(t *testing.T) {
	payload := strings.Repeat(`{"name":"Apple","category":"fruit"}`, 20)

	tests := []struct {
		name           string
		acceptGzip     bool
		gzipRequest    bool
		requestBody    []byte
		wantStatus     int
		wantCompressed bool
	}{
		{name: "plain in, plain out", requestBody: []byte(payload), wantStatus: http.StatusOK},
		{name: "plain in, gzip out", acceptGzip: true, requestBody: []byte(payload), wantStatus: http.StatusOK, wantCompressed: true},
		{name: "gzip in, plain out", gzipRequest: true, requestBody: gzipBytes(t, payload), wantStatus: http.StatusOK},
		{name: "gzip in, gzip out", acceptGzip: true, gzipRequest: true, requestBody: gzipBytes(t, payload), wantStatus: http.StatusOK, wantCompressed: true},
		{name: "corrupt gzip body", gzipRequest: true, requestBody: []byte("not gzip"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.requestBody))
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip")
			}
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler(t)).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			body := rec.Body.Bytes()
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, payload, string(body))
		})
	}
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}

	require.NoError(t, rc.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
