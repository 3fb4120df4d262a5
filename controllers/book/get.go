package bookControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

// GetBooks returns the catalog newest-first. Supports optional search and
// category filters.
// GET /api/books
func GetBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Book{})

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title LIKE ? OR author LIKE ? OR description LIKE ?",
				likePattern, likePattern, likePattern)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var books []models.Book
		if err := query.Order("created_at DESC").Find(&books).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch books")
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// GetBookByID returns a single book.
// GET /api/books/:id
func GetBookByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book ID"})
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
		c.JSON(http.StatusOK, book)
	}
}
