package authControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/config"
	"github.com/Sushmitaa07/KitaabCart/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken signs a JWT carrying the user's id and role.
func IssueToken(user *models.User, jwtCfg config.JWTConfig) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(jwtCfg.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtCfg.Secret))
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		role := input.Role
		if role == "" {
			role = models.RoleBuyer
		}
		if !models.ValidRole(role) {
			apperrors.Respond(c, apperrors.ErrInvalidRole, "")
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			apperrors.Respond(c, apperrors.ErrEmailTaken, "")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, err, "Registration failed")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apperrors.Respond(c, err, "Registration failed")
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Role:     role,
		}
		if err := db.Create(&user).Error; err != nil {
			apperrors.Respond(c, err, "Registration failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    user,
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			// Same response for unknown email and wrong password.
			apperrors.Respond(c, apperrors.ErrBadCredentials, "")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			apperrors.Respond(c, apperrors.ErrBadCredentials, "")
			return
		}

		token, err := IssueToken(&user, jwtCfg)
		if err != nil {
			apperrors.Respond(c, err, "Login failed")
			return
		}

		log.Printf("login successful: %s (role %s)", user.Email, user.Role)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}
