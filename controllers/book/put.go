package bookControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

type UpdateBookInput struct {
	Title       *string          `json:"title"`
	Author      *string          `json:"author"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"image_url"`
}

// UpdateBook updates an existing book; absent fields are left unchanged.
// PUT /api/admin/books/:id
func UpdateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
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

		var input UpdateBookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Title != nil {
			book.Title = *input.Title
		}
		if input.Author != nil {
			book.Author = *input.Author
		}
		if input.Description != nil {
			book.Description = *input.Description
		}
		if input.Category != nil {
			book.Category = *input.Category
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"message": "price must not be negative"})
				return
			}
			book.Price = *input.Price
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "stock must not be negative"})
				return
			}
			book.Stock = *input.Stock
		}
		if input.ImageURL != nil {
			book.ImageURL = *input.ImageURL
		}

		if err := db.Save(&book).Error; err != nil {
			apperrors.Respond(c, err, "Failed to update book")
			return
		}
		c.JSON(http.StatusOK, book)
	}
}
