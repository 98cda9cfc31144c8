// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные. Текст один и тот же для несуществующего
	// email и неверного пароля — не даём перебирать аккаунты.
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован (нет токена, токен битый или просрочен)
	ErrUnauthorized = errors.New("unauthorized")
	// Пользователь с таким email уже существует
	ErrAlreadyExists = errors.New("already exists")
	// Пользователь не найден
	ErrNotFound = errors.New("utilisateur non trouvé")
)
