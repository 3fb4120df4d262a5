package models

import "time"

// CartItem is a weak reference to Book: one row per (user, book) pair,
// enforced by the composite unique index so concurrent adds collapse into
// a single atomic upsert.
type CartItem struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"uniqueIndex:idx_cart_user_book;not null" json:"user_id"`
	BookID   uint `gorm:"uniqueIndex:idx_cart_user_book;not null" json:"book_id"`
	Quantity int  `gorm:"not null" json:"quantity"`
	Book     Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book"`
	AddedAt  time.Time `json:"added_at"`
}
