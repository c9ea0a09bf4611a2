package controllers

import (
	"net/http"

	"github.com/UAShoshi/car-doctor-server/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthController issues and clears the access-token cookie.
type AuthController struct {
	tokens     *services.TokenService
	validate   *validator.Validate
	production bool
}

// NewAuthController creates a new AuthController. In production mode cookies
// are Secure with SameSite=None so the cross-origin frontend can send them;
// in development they are SameSite=Strict over plain HTTP.
func NewAuthController(tokens *services.TokenService, validate *validator.Validate, production bool) *AuthController {
	return &AuthController{tokens: tokens, validate: validate, production: production}
}

// IssueToken signs a one-hour token for the supplied identity and sets it as
// an httpOnly cookie. The body must carry a well-formed email; every other
// field ends up in the token's claims untouched.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	email, _ := identity["email"].(string)
	if err := ac.validate.Var(email, "required,email"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a valid email is required"})
		return
	}

	token, err := ac.tokens.Sign(identity)
	if err != nil {
		zap.L().Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	ac.setTokenCookie(c, token, 3600)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the token cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setTokenCookie writes the cookie directly; gin's SetCookie helper offers no
// SameSite control per call.
func (ac *AuthController) setTokenCookie(c *gin.Context, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}
	if ac.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.Secure = false
		cookie.SameSite = http.SameSiteStrictMode
	}
	http.SetCookie(c.Writer, cookie)
}
