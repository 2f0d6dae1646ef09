package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-storage-api/internal/application/ports"
	"cloud-storage-api/internal/errs"
	"cloud-storage-api/internal/interface/api/rest/dto/auth"
	"cloud-storage-api/internal/interface/api/rest/middleware"
	"cloud-storage-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
	tokens ports.TokenAuthority,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, middleware.AuthMiddleware(tokens), ac.LogoutHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errsMap := validator.ValidateLogin(req); errsMap != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing login or password",
			"details": errsMap,
		})
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "bad credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auth-token": token,
		"message":    "Success authorization",
	})
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	token := middleware.ExtractToken(c)

	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to logout"},
		)
		ac.logger.Error("Logout() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
