package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/auth"
)

// InternalTokenHeader заголовок с токеном внутреннего API
const InternalTokenHeader = "X-Internal-Token"

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidSession  = "сессия недействительна или истекла"
	msgInvalidInternal = "недействительный внутренний токен"
)

type contextKey string

const instructorIDKey contextKey = "instructorID"

// TokenVerifier проверяет сессионный токен
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth проверяет сессию инструктора (Authorization: Bearer <token> или cookie)
// и кладет ID инструктора в контекст
func Auth(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := WithInstructorID(r.Context(), claims.InstructorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// InternalToken пропускает только запросы с общим внутренним токеном
func InternalToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalTokenHeader)
			if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidInternal)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithInstructorID кладет ID инструктора в контекст
func WithInstructorID(ctx context.Context, instructorID int64) context.Context {
	return context.WithValue(ctx, instructorIDKey, instructorID)
}

// GetInstructorID возвращает ID авторизованного инструктора
func GetInstructorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(instructorIDKey).(int64)
	return id, ok && id > 0
}

func sessionToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
