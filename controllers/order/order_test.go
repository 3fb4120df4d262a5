package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/apperrors"
	"github.com/Sushmitaa07/KitaabCart/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Book{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedBook(t *testing.T, db *gorm.DB, title, price string, stock int) models.Book {
	t.Helper()
	book := models.Book{
		Title:  title,
		Author: "Test Author",
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestPlaceOrderComputesExactDecimalTotal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	b1 := seedBook(t, db, "Clean Architecture", "10.00", 5)
	b2 := seedBook(t, db, "The Go Programming Language", "5.50", 5)

	order, err := PlaceOrder(db, user.ID, []OrderItemInput{
		{BookID: b1.ID, Quantity: 2, Price: b1.Price},
		{BookID: b2.ID, Quantity: 1, Price: b2.Price},
	})
	require.NoError(t, err)

	assert.Equal(t, "25.50", order.TotalPrice.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)
	assert.Len(t, order.Items, 2)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)

	_, err := PlaceOrder(db, user.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)

	_, err = PlaceOrder(db, user.ID, []OrderItemInput{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "9.99", 5)

	_, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 0}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "9.99", 5)

	_, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 3, Price: book.Price}})
	require.NoError(t, err)

	var reloaded models.Book
	require.NoError(t, db.First(&reloaded, book.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	inStock := seedBook(t, db, "Plenty", "10.00", 10)
	scarce := seedBook(t, db, "Scarce", "10.00", 1)

	_, err := PlaceOrder(db, user.ID, []OrderItemInput{
		{BookID: inStock.ID, Quantity: 2, Price: inStock.Price},
		{BookID: scarce.ID, Quantity: 5, Price: scarce.Price},
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	// The whole sequence rolled back: no orphaned order, no order items,
	// and the first book's stock untouched.
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	var reloaded models.Book
	require.NoError(t, db.First(&reloaded, inStock.ID).Error)
	assert.Equal(t, 10, reloaded.Stock)
}

func TestPlaceOrderRejectsStalePrice(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "12.00", 5)

	_, err := PlaceOrder(db, user.ID, []OrderItemInput{
		{BookID: book.ID, Quantity: 1, Price: decimal.RequireFromString("9.99")},
	})
	assert.ErrorIs(t, err, apperrors.ErrPriceMismatch)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownBook(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)

	_, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestOrderRoundTripMatchesInput(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	b1 := seedBook(t, db, "Book One", "10.00", 10)
	b2 := seedBook(t, db, "Book Two", "5.50", 10)

	input := []OrderItemInput{
		{BookID: b1.ID, Quantity: 2, Price: b1.Price},
		{BookID: b2.ID, Quantity: 1, Price: b2.Price},
	}
	placed, err := PlaceOrder(db, user.ID, input)
	require.NoError(t, err)

	var fetched models.Order
	require.NoError(t, db.Preload("Items.Book").First(&fetched, placed.ID).Error)
	require.Len(t, fetched.Items, len(input))

	// The {bookId, quantity, price} multiset must match exactly.
	type line struct {
		bookID   uint
		quantity int
		price    string
	}
	want := map[line]int{}
	for _, in := range input {
		want[line{in.BookID, in.Quantity, in.Price.StringFixed(2)}]++
	}
	got := map[line]int{}
	for _, item := range fetched.Items {
		got[line{item.BookID, item.Quantity, item.Price.StringFixed(2)}]++
	}
	assert.Equal(t, want, got)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "10.00", 5)
	order, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: book.Price}})
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{
		models.OrderStatusConfirmed, models.OrderStatusShipped, models.OrderStatusDelivered,
	} {
		updated, err := UpdateStatus(db, toID(order.ID), next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestUpdateStatusRejectsDisallowedTransition(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "10.00", 5)
	order, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: book.Price}})
	require.NoError(t, err)

	// pending → shipped skips confirmation.
	_, err = UpdateStatus(db, toID(order.ID), models.OrderStatusShipped)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, reloaded.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateStatus(db, "12345", models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	other := seedUser(t, db, "other@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "10.00", 100)

	first, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: book.Price}})
	require.NoError(t, err)
	_, err = PlaceOrder(db, other.ID, []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: book.Price}})
	require.NoError(t, err)
	second, err := PlaceOrder(db, user.ID, []OrderItemInput{{BookID: book.ID, Quantity: 2, Price: book.Price}})
	require.NoError(t, err)
	// Force a strict ordering regardless of timestamp resolution.
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", second.ID).
		Update("created_at", time.Now().Add(time.Hour)).Error)

	w := performAuthed(db, user.ID, http.MethodGet, "/api/orders/user", nil,
		func(r *gin.RouterGroup, db *gorm.DB) {
			r.GET("/orders/user", GetUserOrdersHandler(db))
		})
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, user.ID, o.UserID)
		assert.NotEmpty(t, o.Items)
	}
}

func TestGetLatestOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)

	w := performAuthed(db, user.ID, http.MethodGet, "/api/orders/latest", nil,
		func(r *gin.RouterGroup, db *gorm.DB) {
			r.GET("/orders/latest", GetLatestOrderHandler(db))
		})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderHandlerResponses(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "buyer@kitabcart.test", models.RoleBuyer)
	book := seedBook(t, db, "Some Book", "10.00", 5)

	register := func(r *gin.RouterGroup, db *gorm.DB) {
		r.POST("/orders", PlaceOrderHandler(db))
	}

	body, _ := json.Marshal(PlaceOrderRequest{CartItems: []OrderItemInput{
		{BookID: book.ID, Quantity: 2, Price: book.Price},
	}})
	w := performAuthed(db, user.ID, http.MethodPost, "/api/orders", body, register)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "orderId")

	// Empty cart is a validation failure before any write.
	body, _ = json.Marshal(PlaceOrderRequest{})
	w = performAuthed(db, user.ID, http.MethodPost, "/api/orders", body, register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// performAuthed runs a request against a router with the authenticated user
// preloaded into the context, standing in for the JWT middleware.
func performAuthed(db *gorm.DB, userID uint, method, path string, body []byte,
	register func(*gin.RouterGroup, *gorm.DB)) *httptest.ResponseRecorder {

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", models.RoleBuyer)
	})
	register(api, db)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func toID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
