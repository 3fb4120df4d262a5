package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// GetAllUsers lists buyer accounts for the admin dashboard.
// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []models.User{}
		if err := db.
			Select("id", "name", "email", "role", "created_at").
			Where("role = ?", models.RoleBuyer).
			Order("id").
			Find(&users).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// UpdateUserRole changes a user's role.
// PATCH /api/admin/users/:id
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
			return
		}
		if !models.ValidRole(input.Role) {
			apperrors.Respond(c, apperrors.ErrInvalidRole, "")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ErrUserNotFound, "")
			} else {
				apperrors.Respond(c, err, "Failed to fetch user")
			}
			return
		}

		if err := db.Model(&user).Update("role", input.Role).Error; err != nil {
			apperrors.Respond(c, err, "Failed to update user role")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser edits a user's name and email.
// PUT /api/admin/users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ErrUserNotFound, "")
			} else {
				apperrors.Respond(c, err, "Failed to fetch user")
			}
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				apperrors.Respond(c, err, "Failed to update user information")
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUser removes a user account. Orders placed by the user are kept,
// they only lose the live account reference.
// DELETE /api/admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ErrUserNotFound, "")
			} else {
				apperrors.Respond(c, err, "Failed to fetch user")
			}
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// The cart is owned by the account, orders are not.
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			apperrors.Respond(c, err, "Failed to delete user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
