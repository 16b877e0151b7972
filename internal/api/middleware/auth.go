package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

const (
	headerAuthorization = "Authorization"
	headerToken         = "token"
	bearerPrefix        = "Bearer "

	msgAuthRequired   = "требуется авторизация"
	msgSessionExpired = "сессия истекла, войдите снова"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает сессию из заголовка Authorization: Bearer <token> (или token: <token>).
// Подпись токена не проверяется: это делает бэкенд клиники.
// Для JWT читается только exp, чтобы не отправлять заведомо истекшую сессию.
type Auth struct {
	now    func() time.Time
	logger Logger
}

// NewAuth создает middleware авторизации
func NewAuth(logger Logger) *Auth {
	return &Auth{now: time.Now, logger: logger}
}

// Optional кладет сессию в контекст, если она есть. Запрос без токена пропускается.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := SessionFromRequest(r); ok {
			r = r.WithContext(WithSession(r.Context(), session))
		}
		next.ServeHTTP(w, r)
	})
}

// Required отвечает 401, если сессии нет или известно, что она истекла
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromRequest(r)
		if !ok {
			a.logger.Warn("%s %s - missing session token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}

		if !session.IsAuthenticated(a.now()) {
			a.logger.Warn("%s %s - session expired", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// SessionFromRequest читает токен из заголовков запроса
func SessionFromRequest(r *http.Request) (domain.Session, bool) {
	token := ""
	if h := r.Header.Get(headerAuthorization); strings.HasPrefix(h, bearerPrefix) {
		token = strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if token == "" {
		token = strings.TrimSpace(r.Header.Get(headerToken))
	}
	if token == "" {
		return domain.Session{}, false
	}

	return NewSession(token), true
}

// NewSession строит сессию из токена; для JWT заполняется ExpiresAt
func NewSession(token string) domain.Session {
	return domain.Session{
		Token:     token,
		ExpiresAt: tokenExpiry(token),
	}
}

// tokenExpiry возвращает exp из JWT без проверки подписи; nil для непрозрачных токенов
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	t := exp.Time
	return &t
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession достает сессию из контекста
func GetSession(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	return session, ok
}
