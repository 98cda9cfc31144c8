// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/crypto"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userEmailKey — ключ контекста, под которым хранится email аутентифицированного пользователя.
const userEmailKey ctxKey = "user_email"

// JWTVerifier инкапсулирует параметры проверки JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена (HS256)
//   - валидации issuer и audience
//   - извлечения email из claims.Subject
type JWTVerifier struct {
	cfg crypto.JWTConfig
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{cfg: crypto.JWTConfig{
		SigningKey: signingKey,
		Issuer:     issuer,
		Audience:   audience,
	}}
}

// UserEmailFromContext извлекает email аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - email
//   - false, если пользователь не аутентифицирован
func UserEmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - сохраняет email из claims.Subject в context.Context
//
// Любая причина отказа (нет токена, битый токен, неверная подпись,
// истёкший срок) даёт один и тот же ответ HTTP 401 Unauthorized —
// наружу не сообщаем, какая именно проверка не прошла.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			email, err := crypto.ParseAccessToken(tokenStr, v.cfg)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
