package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel errors shared by controllers. Each maps to a single HTTP status;
// anything unrecognised is treated as internal and never echoed to clients.
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyCart         = errors.New("cart items are required")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPriceMismatch     = errors.New("item price does not match catalog price")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrEmailTaken        = errors.New("email already in use")
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrInvalidRole       = errors.New("invalid role")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrPriceMismatch),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrBadCredentials),
		errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err. Internal failures get a
// caller-supplied generic message so database errors are not leaked verbatim.
func Respond(c *gin.Context, err error, internalMsg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"message": internalMsg})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
