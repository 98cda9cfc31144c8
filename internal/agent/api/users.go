// Типизированные вызовы API пользователей
package api

import (
	"fmt"
	"net/url"

	"github.com/IvanChernomyrdin/go-user-api/internal/shared/models"
)

// Register создаёт нового пользователя.
//
// Регистрация публична и не требует токена.
func (c *Client) Register(email, password string) (models.UserResponse, error) {
	var resp models.UserResponse
	err := c.PostJSON("/utilisateur/", models.CreateUserRequest{
		Email:    email,
		Password: password,
	}, &resp, "")
	return resp, err
}

// Login выполняет вход и возвращает access-токен.
//
// Сервер принимает форму в стиле OAuth2: поля username и password,
// где username содержит email.
func (c *Client) Login(email, password string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostForm("/token", url.Values{
		"username": {email},
		"password": {password},
	}, &resp)
	return resp, err
}

// ListUsers возвращает всех пользователей.
func (c *Client) ListUsers(authToken string) ([]models.UserResponse, error) {
	var resp []models.UserResponse
	err := c.GetJSON("/utilisateurs/", &resp, authToken)
	return resp, err
}

// GetUser возвращает пользователя по id.
func (c *Client) GetUser(id int64, authToken string) (models.UserResponse, error) {
	var resp models.UserResponse
	err := c.GetJSON(fmt.Sprintf("/utilisateur/%d", id), &resp, authToken)
	return resp, err
}

// UpdateUser заменяет email и пароль пользователя.
func (c *Client) UpdateUser(id int64, email, password, authToken string) (models.UserResponse, error) {
	var resp models.UserResponse
	err := c.PutJSON(fmt.Sprintf("/utilisateur/%d", id), models.UpdateUserRequest{
		Email:    email,
		Password: password,
	}, &resp, authToken)
	return resp, err
}

// DeleteUser удаляет пользователя по id.
func (c *Client) DeleteUser(id int64, authToken string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/utilisateur/%d", id), &resp, authToken)
	return resp, err
}
