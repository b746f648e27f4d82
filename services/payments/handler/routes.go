package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments/handler/http"
)

// Handler coordinates all protocol handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	payoutHandler  *http.PayoutHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	paymentHandler *http.PaymentHandler,
	payoutHandler *http.PayoutHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		payoutHandler:  payoutHandler,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// The gateway posts callbacks without credentials
	api.POST("/payments/callback", h.paymentHandler.STKCallback)

	// Protected routes with JWT middleware (user-facing)
	protected := api.Group("", h.GetJWTMiddleware())

	paymentGroup := protected.Group("/payments")
	paymentGroup.POST("", h.paymentHandler.InitiatePayment)
	paymentGroup.GET("/:id/status", h.paymentHandler.PaymentStatus)

	payoutGroup := protected.Group("/payouts")
	payoutGroup.POST("/:id/initiate", h.payoutHandler.InitiatePayout)
}
