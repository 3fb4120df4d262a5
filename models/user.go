package models

import "time"

const (
	RoleBuyer = "buyer"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:VARCHAR(20);default:'buyer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether r is one of the recognised roles.
func ValidRole(r string) bool {
	return r == RoleBuyer || r == RoleAdmin
}
