package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/EminenceChannel/initializers"
	"github.com/EminenceChannel/models"
	"github.com/doug-martin/goqu/v9"
)

// AdminLogin exchanges valid admin credentials for a signed token. Every
// authenticated caller is an admin; there is no visitor account tier.
func AdminLogin(c *gin.Context) {
	var login models.Login

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	found, err := initializers.DB.From("admin_user").
		Select("*").
		Where(goqu.C("email").Eq(login.Email)).
		ScanStruct(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(login.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   admin.Admin_User_ID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"role": "admin",
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully.",
		"token":   token,
		"admin":   admin,
	})
}

// GetAdminProfile returns the authenticated admin from the request context.
func GetAdminProfile(c *gin.Context) {
	admin, _ := c.Get("currentAdmin")

	c.JSON(http.StatusOK, gin.H{
		"admin": admin,
	})
}
