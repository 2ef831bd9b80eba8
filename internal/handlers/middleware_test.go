package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"building_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.requestIDMiddleware, h.principalMiddleware, func(c *gin.Context) {
		caller := h.principal(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "upn": caller.Upn})
	})
	return r
}

func TestPrincipalMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name   string
		header string
		want   want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing Authorization header"},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "expired/invalid token",
			header: "Bearer expired",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid or expired token"},
		},
	}

	auth := &mockAuth{parseErr: errors.New("bad token")}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("code=%d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}
			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["error"] != tc.want.errMsg {
				t.Fatalf("error=%q, want %q", body["error"], tc.want.errMsg)
			}
		})
	}
}

func TestPrincipalMiddleware_StoresIdentityPerRequest(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 5, Upn: "carol@contoso.com"}}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastParseToken != "tok" {
		t.Fatalf("token not passed to parser: %q", auth.lastParseToken)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["upn"] != "carol@contoso.com" {
		t.Fatalf("identity not available to handler: %v", body)
	}
}

func TestRequestIDMiddleware_EchoesHeader(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 5}}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	// Provided id is preserved.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("request id not echoed: %q", got)
	}

	// Missing id gets generated.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}
}
