package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/2beens/gymplans/internal/auth"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const MCPSecretHeader = "X-MCP-Secret"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (userID string, isLogged bool, err error)
}

type AuthMiddlewareHandler struct {
	mcpSecret    string
	loginChecker loginChecker
	allowedPaths map[string]bool
	// paths readable by anyone, but only with GET
	allowedGetPaths map[string]bool
}

func NewAuthMiddlewareHandler(
	mcpSecret string,
	loginChecker loginChecker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		mcpSecret:    mcpSecret,
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/":         true,
			"/version":  true,
			"/whereami": true,
			"/myip":     true,

			// login-logout:
			"/a/login":    true,
			"/a/register": true,
			"/a/logout":   true,
		},
		allowedGetPaths: map[string]bool{
			"/muscle-groups":   true,
			"/plans/templates": true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(method, path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	return method == http.MethodGet && h.allowedGetPaths[path]
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.Method, r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// MCP clients authenticate with a shared secret, not a user session
			if strings.HasPrefix(r.URL.Path, "/mcp") {
				secret := r.Header.Get(MCPSecretHeader)
				if h.mcpSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.mcpSecret)) != 1 {
					reqIp, _ := pkg.ReadUserIP(r)
					log.Warnf("unauthorized /mcp request detected from %s", reqIp)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-mcp-secret")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// a non-standard req. header is set, and thus - browser makes a preflight/OPTIONS request:
			//	https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#preflighted_requests
			authToken := r.Header.Get(auth.TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetAttributes(attribute.String("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
		})
	}
}
