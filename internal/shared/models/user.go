// Package models содержит DTO, общие для сервера и CLI-клиента.
//
// Здесь описан HTTP-контракт API пользователей: тела запросов и ответов.
// Поле password_hash наружу не отдаётся никогда — публичное представление
// пользователя ограничено id и email.
package models

// UserResponse — публичное представление пользователя.
//
// Используется в ответах:
//
//	POST /utilisateur/
//	GET  /utilisateurs/
//	GET  /utilisateur/{id}
//	PUT  /utilisateur/{id}
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CreateUserRequest — тело запроса создания пользователя.
//
// Password — plaintext, сервер хэширует его перед сохранением.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest — тело запроса обновления пользователя.
//
// Обновление полное: заменяются и email, и пароль.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse — ответ эндпоинта POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse — простой текстовый ответ сервера.
//
// Используется в GET / (приветствие) и DELETE /utilisateur/{id}
// (подтверждение удаления).
type MessageResponse struct {
	Message string `json:"message"`
}
