// HTTP-хендлеры CRUD-операций над пользователями
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	svcmodels "github.com/IvanChernomyrdin/go-user-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-user-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-user-api/internal/shared/models"
)

// parseID разбирает URL-параметр {id}.
// Нечисловой id — это ошибка валидации запроса (422), а не 404.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, serr.ErrInvalidInput
	}
	return id, nil
}

func toUserResponse(u svcmodels.User) models.UserResponse {
	return models.UserResponse{ID: u.ID, Email: u.Email}
}

// ListUsers возвращает всех пользователей (публичные представления).
//
// Требует JWT-аутентификацию.
//
// ListUsers godoc
// @Summary      List users
// @Description  Returns all users (public views, no password hashes).
// @Tags         utilisateurs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.UserResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /utilisateurs/ [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	// пустой список сериализуем как [], а не null
	views := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		views = append(views, toUserResponse(u))
	}

	WriteJSON(w, http.StatusOK, views)
}

// GetUser возвращает пользователя по id.
//
// Требует JWT-аутентификацию.
//
// GetUser godoc
// @Summary      Get user by id
// @Tags         utilisateurs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} models.UserResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      422 {object} ErrorResponse "Invalid id"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /utilisateur/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		return
	}

	user, err := h.Svc.Users.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser полностью обновляет email и пароль пользователя.
//
// Новый пароль хэшируется перед записью. Уникальность email при
// обновлении проверяется так же, как при создании.
//
// Требует JWT-аутентификацию.
//
// UpdateUser godoc
// @Summary      Update user
// @Description  Replaces email and password of an existing user.
// @Tags         utilisateurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                      true "User ID"
// @Param        request body models.UpdateUserRequest true "Updated user data"
// @Success      200 {object} models.UserResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or email already taken"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      422 {object} ErrorResponse "Invalid input"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /utilisateur/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Users.Update(r.Context(), id, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("update user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser удаляет пользователя по id.
//
// Требует JWT-аутентификацию.
//
// DeleteUser godoc
// @Summary      Delete user
// @Tags         utilisateurs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} models.MessageResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      422 {object} ErrorResponse "Invalid id"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /utilisateur/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("delete user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{
		Message: "Utilisateur supprimé avec succès",
	})
}
