// HTTP-хендлеры регистрации и выдачи токена
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-user-api/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
)

// Root отвечает приветственным сообщением.
//
// Root godoc
// @Summary      Welcome
// @Description  Health/welcome endpoint.
// @Tags         misc
// @Produce      json
// @Success      200 {object} models.MessageResponse
// @Router       / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{
		Message: "Bienvenue à l'API des utilisateurs",
	})
}

// Register обрабатывает создание (регистрацию) пользователя.
//
// Пароль хэшируется до записи в БД, plaintext нигде не сохраняется.
// В ответе только публичное представление — без password_hash.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON или email уже занят;
//   - 422 Unprocessable Entity: невалидные входные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// Register godoc
// @Summary      Create user
// @Description  Registers a new user. Password is stored hashed (bcrypt).
// @Tags         utilisateurs
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "Create user request"
// @Success      201 {object} models.UserResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or email already taken"
// @Failure      422 {object} ErrorResponse "Invalid input"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /utilisateur/ [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			// занятый email — это 400, а не 409
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// Token обрабатывает вход пользователя и выдачу access-токена.
//
// Тело запроса — форма (application/x-www-form-urlencoded) с полями
// username и password; username содержит email.
//
// Несуществующий email и неверный пароль дают один и тот же ответ 401 —
// перебор аккаунтов по разнице сообщений невозможен.
//
// Ответы:
//   - 200 OK: успешный вход, в теле access_token и token_type;
//   - 401 Unauthorized: неверные учётные данные;
//   - 422 Unprocessable Entity: пустые поля формы;
//   - 500 Internal Server Error: прочие ошибки.
//
// Token godoc
// @Summary      Login
// @Description  Issues a signed bearer token for valid credentials.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "User email"
// @Param        password formData string true "User password"
// @Success      200 {object} models.TokenResponse
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      422 {object} ErrorResponse "Invalid input"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /token [post]
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	access, err := h.Svc.Auth.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}
