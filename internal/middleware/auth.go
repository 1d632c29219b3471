// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/user"
)

const (
	UserIDKey   contextKey = "user_id"
	UserKey     contextKey = "auth_user"
	ClaimsKey   contextKey = "jwt_claims"
	UserMailKey contextKey = "user_email"
)

type TokenVerifier interface {
	VerifyAccessToken(
		ctx context.Context,
		token string,
	) (*AccessTokenClaims, error)
}

type UserLoader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type AccessTokenClaims struct {
	UserID string
	Email  string
}

// Authenticator is the capability gate for token-protected routes: it
// resolves the bearer token into a full user before the handler runs, so
// handlers only ever see an already-authenticated identity.
func Authenticator(
	verifier TokenVerifier,
	loader UserLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.Unauthorized(w, "")
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				core.JSONError(w, err)
				return
			}

			u, err := loader.GetByID(r.Context(), claims.UserID)
			if err != nil {
				// A valid token for a user that no longer exists is
				// still an authentication failure, not a 404.
				if errors.Is(err, core.ErrNotFound) {
					core.Unauthorized(w, "")
					return
				}
				core.InternalServerError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			ctx = WithUser(ctx, u)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// WithUser records an authenticated identity on the context. Both the token
// authenticator and the login credential gate use it, so handlers read the
// resolved user the same way regardless of how it was authenticated.
func WithUser(ctx context.Context, u *user.User) context.Context {
	ctx = context.WithValue(ctx, UserKey, u)
	ctx = context.WithValue(ctx, UserIDKey, u.ID)
	ctx = context.WithValue(ctx, UserMailKey, u.Email)
	return ctx
}

func GetUser(ctx context.Context) *user.User {
	if u, ok := ctx.Value(UserKey).(*user.User); ok {
		return u
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}
