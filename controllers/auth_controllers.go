package controllers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/middlewares"
	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// validatePassword enforces the registration password policy. It returns the
// flash key naming the first failed rule, or "" when the password passes.
func validatePassword(password string) string {
	if len([]rune(password)) < 8 {
		return "password_too_short"
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		return "password_no_digit"
	}
	if !hasUpper {
		return "password_no_uppercase"
	}
	if !hasLower {
		return "password_no_lowercase"
	}
	return ""
}

// Register creates a new customer account.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if key := validatePassword(req.Password); key != "" {
		utils.RespondJSON(c, http.StatusBadRequest, key, nil)
		return
	}

	var existing models.User
	err := ac.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		key := "email_exists"
		if existing.Username == req.Username {
			key = "username_exists"
		}
		utils.RespondJSON(c, http.StatusConflict, key, nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("new user registered: %s", user.Username)
	utils.RespondJSON(c, http.StatusCreated, "registration_success", gin.H{
		"user_id": user.ID,
	})
}

// Login checks credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.RespondJSON(c, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondJSON(c, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(middlewares.SessionCookieName, token,
		int(utils.SessionLifetime.Seconds()), "/", "", false, true)

	utils.RespondJSON(c, http.StatusOK, "login_success", gin.H{
		"token":    token,
		"is_admin": user.IsAdmin,
	})
}

// Logout revokes the current session token and clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middlewares.SessionCookieName); err == nil && cookie != "" {
		utils.BlacklistToken(cookie)
	}
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)

	utils.RespondJSON(c, http.StatusOK, "logout_success", nil)
}

// SetLanguage switches the per-session locale between uk and en.
func (ac *AuthController) SetLanguage(c *gin.Context) {
	lang := c.Param("language")
	if !middlewares.SupportedLocale(lang) {
		utils.RespondJSON(c, http.StatusBadRequest, "language_not_supported", nil)
		return
	}

	c.SetCookie(middlewares.LocaleCookieName, lang, 0, "/", "", false, false)
	utils.RespondJSON(c, http.StatusOK, "language_changed", gin.H{"language": lang})
}
