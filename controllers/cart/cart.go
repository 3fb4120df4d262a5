package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/middleware"
	"github.com/Sushmitaa07/KitaabCart/models"
)

type CartItemInput struct {
	BookID   uint `json:"bookId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// GetUserCart returns the caller's cart items with their book display
// fields. An empty cart is an empty list, never an error.
// GET /api/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		items := []models.CartItem{}
		if err := db.Preload("Book").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// AddCartItem adds a book to the caller's cart. Repeat adds for the same
// book increment the existing quantity; the (user_id, book_id) unique index
// plus ON CONFLICT makes the increment a single atomic statement, so there
// is no check-then-insert race.
// POST /api/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bookId or quantity"})
			return
		}

		var book models.Book
		if err := db.First(&book, input.BookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ErrBookNotFound, "")
			} else {
				apperrors.Respond(c, err, "Failed to validate book")
			}
			return
		}

		item := models.CartItem{
			UserID:   userID,
			BookID:   input.BookID,
			Quantity: input.Quantity,
			AddedAt:  time.Now(),
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + excluded.quantity"),
				"added_at": time.Now(),
			}),
		}).Create(&item).Error
		if err != nil {
			apperrors.Respond(c, err, "Failed to add to cart")
			return
		}

		// Re-read for the post-increment quantity and joined book.
		var result models.CartItem
		if err := db.Preload("Book").
			Where("user_id = ? AND book_id = ?", userID, input.BookID).
			First(&result).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch cart item")
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// RemoveCartItem deletes a cart item by id. Deleting an id that does not
// exist (or was already removed) succeeds with no effect.
// DELETE /api/cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			apperrors.Respond(c, result.Error, "Failed to remove from cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// ClearUserCart removes all of the caller's cart items. The checkout flow
// calls this explicitly after a successful order.
// DELETE /api/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			apperrors.Respond(c, err, "Failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
