// Package crypto содержит криптографические примитивы сервера.
//
// В частности, пакет отвечает за:
//   - хэширование и проверку паролей пользователей (bcrypt);
//   - генерацию и проверку JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - соблюдение требований безопасности (HS256, срок жизни).
package crypto

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (email пользователя)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и срок жизни токена
// и возвращает email из claims.Subject.
//
// Сначала проверяется подпись (подделанный токен отклоняется),
// затем exp. Любая причина отказа — битый формат, неверная подпись,
// истёкший срок — схлопывается в один ErrUnauthorized: наружу не
// сообщаем, какая именно проверка не прошла.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return "", serr.ErrUnauthorized
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return "", serr.ErrUnauthorized
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return "", serr.ErrUnauthorized
		}
	}

	email := strings.TrimSpace(claims.Subject)
	if email == "" {
		return "", serr.ErrUnauthorized
	}
	return email, nil
}
