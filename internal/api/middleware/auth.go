package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session_context"

// Auth проверяет наличие Bearer токена и кладет его в контекст запроса.
// Проверка подписи токена выполняется на стороне сервиса доступности.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			handlers.RespondUnauthorized(w, "отсутствует токен авторизации")
			return
		}

		ctx := WithSessionContext(r.Context(), domain.SessionContext{Token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSessionContext кладет контекст авторизации в ctx
func WithSessionContext(ctx context.Context, sc domain.SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey, sc)
}

// GetSessionContext извлекает контекст авторизации из ctx
func GetSessionContext(ctx context.Context) (domain.SessionContext, bool) {
	sc, ok := ctx.Value(sessionContextKey).(domain.SessionContext)
	if !ok || !sc.IsAuthenticated() {
		return domain.SessionContext{}, false
	}
	return sc, true
}
