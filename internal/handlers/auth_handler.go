package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/config"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login checks the env-configured master credentials first, then falls back
// to a stored admin record with a bcrypt hash. The response shape is the
// historical one ({token, email} or 401); only the token moved from a static
// string to a signed, expiring JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := ""
	switch {
	case h.isMaster(email, req.Password):
		role = "master"
	case h.isStoredAdmin(email, req.Password):
		role = "db"
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": email,
	})
}

func (h *AuthHandler) isMaster(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare(
		[]byte(email),
		[]byte(strings.ToLower(h.config.AdminEmail)),
	) == 1
	passOK := subtle.ConstantTimeCompare(
		[]byte(password),
		[]byte(h.config.AdminPassword),
	) == 1
	return emailOK && passOK
}

func (h *AuthHandler) isStoredAdmin(email, password string) bool {
	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(password),
	) == nil
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
