package bookControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

type BookInput struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

// CreateBook adds a new book to the catalog.
// POST /api/admin/books
func CreateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() || input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "price and stock must not be negative"})
			return
		}

		book := models.Book{
			Title:       input.Title,
			Author:      input.Author,
			Description: input.Description,
			Category:    input.Category,
			Price:       input.Price,
			Stock:       input.Stock,
			ImageURL:    input.ImageURL,
		}
		if err := db.Create(&book).Error; err != nil {
			apperrors.Respond(c, err, "Failed to add book")
			return
		}
		c.JSON(http.StatusCreated, book)
	}
}
