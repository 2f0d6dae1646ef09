package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-storage-api/internal/application/ports"
	userDB "cloud-storage-api/internal/infrastructure/db/postgres/user"
	userDto "cloud-storage-api/internal/interface/api/rest/dto/user"
	"cloud-storage-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

// NewUserController registers the account routes. They are exempt from
// session resolution so that accounts can be created before a login exists.
func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUsers, uc.CreateUserHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req userDto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errsMap := validator.ValidateCreateUser(req); errsMap != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errsMap,
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrLoginAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created",
		"user":    userDto.ToResponseUser(*u),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDto.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
