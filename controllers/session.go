package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/engine"
	"github.com/vendastock/vendaStock/models"
)

const sessionDuration = 8 * time.Hour

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// currentCaller resolves the authenticated identity placed on the context by
// the auth middleware.
func currentCaller(c *gin.Context) (engine.Caller, bool) {
	userID, okUser := c.Get("user_id")
	tenantID, okTenant := c.Get("tenant_id")
	if !okUser || !okTenant {
		return engine.Caller{}, false
	}
	caller := engine.Caller{
		UserID:   userID.(uint),
		TenantID: tenantID.(uint),
	}
	if role, ok := c.Get("role"); ok {
		caller.Role = role.(string)
	}
	return caller, true
}

func issueSessionCookie(c *gin.Context, user *models.User) error {
	expirationTime := time.Now().Add(sessionDuration)

	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"email":     user.Email,
		"role":      user.Role,
		"exp":       expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return err
	}

	cookie := fmt.Sprintf(
		"token=%s; Path=/; Max-Age=%d; Secure; HttpOnly; SameSite=None",
		tokenString,
		int(sessionDuration.Seconds()),
	)
	c.Header("Set-Cookie", cookie)
	return nil
}

func Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", creds.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !CheckPasswordHash(creds.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := issueSessionCookie(c, &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
	})
}

func Signout(c *gin.Context) {
	c.Header("Set-Cookie", "token=; Path=/; Max-Age=0; Secure; HttpOnly; SameSite=None")
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func VerifyAuth(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authorization token required",
			"code":  "MISSING_CREDENTIALS",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User account no longer exists",
				"code":  "USER_NOT_FOUND",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Could not verify account",
				"code":  "SERVER_ERROR",
			})
		}
		return
	}

	response := gin.H{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"email":     user.Email,
		"role":      user.Role,
	}
	// Tokens without an exp claim still verify; only report a lifetime when
	// one is present.
	if exp, ok := c.Get("exp"); ok {
		response["expires_in"] = time.Until(time.Unix(int64(exp.(float64)), 0))
	}

	c.JSON(http.StatusOK, response)
}
