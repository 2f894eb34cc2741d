package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/Oost-hash/Budget-sub001/internal/middleware"
	"github.com/Oost-hash/Budget-sub001/internal/platform/config"
	"github.com/Oost-hash/Budget-sub001/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler handles the single-user login flow.
type AuthHandler struct {
	username     string
	passwordHash string
	jwtSecret    string
	jwtDuration  time.Duration
}

// NewAuthHandler creates a new AuthHandler from the static credentials in
// the configuration.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		username:     cfg.AuthUsername,
		passwordHash: cfg.AuthPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// Login attempts are throttled hard: 5 per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticates the household user and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	if !usernameMatch || !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "budget-backend",
		Subject:   h.username,
		ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(h.jwtDuration.Seconds()),
	})
}
