package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x-forwarded-for single",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:    "203.0.113.7",
		},
		{
			name:    "x-forwarded-for list takes first",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "x-real-ip",
			headers: map[string]string{"X-Real-IP": "198.51.100.2"},
			want:    "198.51.100.2",
		},
		{
			name:    "forwarded-for wins over real-ip",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.2"},
			want:    "203.0.113.7",
		},
		{
			name: "no headers falls back to shared unknown bucket",
			want: UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:4242"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, ExtractClientIP(req))
		})
	}
}

func TestClientIPMiddleware(t *testing.T) {
	var got string
	handler := ClientIPMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIPFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "203.0.113.7", got)
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
}
