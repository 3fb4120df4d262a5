package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

// ExportBooksToExcel streams the full catalog as an .xlsx download.
// GET /api/admin/books/export-excel
func ExportBooksToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.Book
		if err := db.Order("created_at DESC").Find(&books).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch books")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Books")
		if err != nil {
			apperrors.Respond(c, err, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "Title", "Author", "Description", "Category",
			"Price", "Stock", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, b := range books {
			row := sheet.AddRow()
			row.AddCell().SetValue(b.ID)
			row.AddCell().SetValue(b.Title)
			row.AddCell().SetValue(b.Author)
			row.AddCell().SetValue(b.Description)
			row.AddCell().SetValue(b.Category)
			row.AddCell().SetValue(b.Price.StringFixed(2))
			row.AddCell().SetValue(b.Stock)
			row.AddCell().SetValue(b.ImageURL)
			row.AddCell().SetValue(b.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=books.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			apperrors.Respond(c, err, "Failed to write Excel file")
			return
		}
	}
}

// ImportBooksFromExcel bulk-creates books from an uploaded .xlsx sheet with
// columns Title, Author, Description, Category, Price, Stock, ImageURL.
// POST /api/admin/books/import-excel
func ImportBooksFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			apperrors.Respond(c, err, "Failed to open Excel file")
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			apperrors.Respond(c, err, "Failed to parse Excel file")
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty or missing header row"})
			return
		}
		sheet := xlFile.Sheets[0]

		var books []models.Book
		for i, row := range sheet.Rows {
			if i == 0 || len(row.Cells) < 6 {
				continue
			}
			title := row.Cells[0].String()
			author := row.Cells[1].String()
			if title == "" || author == "" {
				continue
			}

			price, err := decimal.NewFromString(row.Cells[4].String())
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Invalid price in row " + strconv.Itoa(i+1),
				})
				return
			}
			stock, _ := row.Cells[5].Int()

			book := models.Book{
				Title:       title,
				Author:      author,
				Description: row.Cells[2].String(),
				Category:    row.Cells[3].String(),
				Price:       price,
				Stock:       stock,
			}
			if len(row.Cells) > 6 {
				book.ImageURL = row.Cells[6].String()
			}
			books = append(books, book)
		}

		if len(books) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid book rows found"})
			return
		}
		if err := db.Create(&books).Error; err != nil {
			apperrors.Respond(c, err, "Failed to import books")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Books imported successfully",
			"imported": len(books),
		})
	}
}
