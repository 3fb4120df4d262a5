package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/middleware"
	"github.com/Sushmitaa07/KitaabCart/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	BookID   uint            `json:"bookId" binding:"required"`
	Quantity int             `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

type PlaceOrderRequest struct {
	CartItems []OrderItemInput `json:"cartItems"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// generateOrderRef returns a unique reference for the order, e.g.
// 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder converts the submitted line items into an Order with its
// OrderItems in a single transaction. Prices are re-derived from the catalog
// rather than trusted from the client, stock is checked and decremented with
// a guarded update, and any failure rolls the whole sequence back so no
// orphaned order survives a partial insert.
func PlaceOrder(db *gorm.DB, userID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperrors.ErrInvalidQuantity
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		var orderItems []models.OrderItem

		for _, item := range items {
			var book models.Book
			if err := tx.First(&book, item.BookID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrBookNotFound
				}
				return err
			}

			// The client echoes the price it displayed; a mismatch means a
			// stale page or a tampered request, either way reject.
			if !item.Price.IsZero() && !item.Price.Equal(book.Price) {
				return apperrors.ErrPriceMismatch
			}

			// Guarded decrement, no row is touched when stock is short.
			res := tx.Model(&models.Book{}).
				Where("id = ? AND stock >= ?", book.ID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrInsufficientStock
			}

			total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				BookID:   book.ID,
				Quantity: item.Quantity,
				Price:    book.Price,
			})
		}

		order = models.Order{
			UserID:     userID,
			OrderRef:   generateOrderRef(),
			TotalPrice: total,
			Status:     models.OrderStatusPending,
			Items:      orderItems,
			CreatedAt:  time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus applies an admin status change after checking the transition
// table. Returns the updated order.
func UpdateStatus(db *gorm.DB, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOrderNotFound
			}
			return err
		}
		if !order.Status.CanTransitionTo(newStatus) {
			return apperrors.ErrInvalidTransition
		}
		order.Status = newStatus
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart items are required"})
			return
		}

		order, err := PlaceOrder(db, userID, req.CartItems)
		if err != nil {
			apperrors.Respond(c, err, "Failed to place order")
			return
		}

		broadcastOrderEvent("order_placed", order)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"orderId": order.ID,
		})
	}
}

// GET /api/orders/user
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		orders := []models.Order{}
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Book").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/latest
func GetLatestOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Book").
			Order("created_at DESC").
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "No orders found"})
			} else {
				apperrors.Respond(c, err, "Failed to fetch latest order")
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Book").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperrors.Respond(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /api/admin/orders/:id
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order ID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
			return
		}

		newStatus, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			apperrors.Respond(c, apperrors.ErrInvalidStatus, "")
			return
		}

		order, err := UpdateStatus(db, orderID, newStatus)
		if err != nil {
			apperrors.Respond(c, err, "Failed to update order status")
			return
		}

		broadcastOrderEvent("status_changed", order)
		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}
