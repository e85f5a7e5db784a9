package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/middleware"
	"github.com/arsipku/arsip_backend/internal/platform/config"
	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the session endpoints. Login is rate limited
// per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and sets an http-only session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong password"
// @Failure 404 {object} ErrorResponse "Unknown email"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email dan password wajib diisi"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Unknown email is reported distinctly from a bad password.
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Email tidak ditemukan"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Password salah"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.JWTExpiryDuration.Seconds()))
	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(user)})
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "New account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email sudah terdaftar"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// me godoc
// @Summary Current session
// @Description Reports the logged in user, or a null user when the session is missing or invalid.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	token, err := c.Cookie(h.cfg.AuthCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	claims, err := utils.ParseAndValidateJWT(token, h.cfg.JWTSecret)
	if err != nil || claims.Subject == "" {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.MeResponse{User: &resp})
}

func (h *authHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AuthCookieName, token, maxAge, "/", "", h.cfg.IsProduction, true)
}
