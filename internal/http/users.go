package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openshelf/bookstore/internal/entities"
)

// UserStore defines database operations the users controller relies on.
type UserStore interface {
	CreateUser(user *entities.User) error
	GetUserByID(id uint) (*entities.User, error)
	DeleteUser(id uint) error
}

type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

// Pointer fields make presence of every field explicit; value-typed strings
// with a required tag would also reject present-but-empty input.
type createUserRequest struct {
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// CreateUser inserts a new user and returns it with the assigned id.
// Uniqueness of username and email is left to the store; a violation
// surfaces as an internal error.
// POST /users/
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user := entities.User{
		Username: *req.Username,
		Email:    *req.Email,
		Password: *req.Password,
	}
	if err := uc.store.CreateUser(&user); err != nil {
		respondInternalError(c, err, "create user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a single user by id.
// GET /users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user", id)
			return
		}
		respondInternalError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user by id. Orders referencing the user are left in
// place; deletion never cascades.
// DELETE /users/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := uc.store.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user", id)
			return
		}
		respondInternalError(c, err, "get user for delete")
		return
	}

	if err := uc.store.DeleteUser(id); err != nil {
		respondInternalError(c, err, "delete user")
		return
	}

	respondDeleted(c, "user", id)
}
