package bookControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

// DeleteBook removes a book from the catalog along with any cart rows that
// still point at it. Order items keep their captured price and quantity.
// DELETE /api/admin/books/:id
func DeleteBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Book ID is required"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ErrBookNotFound, "")
			} else {
				apperrors.Respond(c, err, "Failed to fetch book")
			}
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("book_id = ?", book.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&book).Error
		})
		if err != nil {
			apperrors.Respond(c, err, "Failed to delete book")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
	}
}
