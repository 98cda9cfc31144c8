// Хэширование паролей
package crypto

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хэш пароля.
//
// Соль генерируется внутри bcrypt и встраивается в строку хэша,
// поэтому два вызова с одним паролем дают разные строки.
// cost задаётся в конфиге (password.bcrypt.cost).
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword сравнивает plaintext-пароль с хэшем.
//
// Возвращает только bool: несовпадение и битый формат хэша
// неразличимы для вызывающего — оба дают false.
func VerifyPassword(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
