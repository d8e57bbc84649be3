package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeEmail trims and lowercases an address. Uniqueness checks always
// run against the normalized form, so "Ada@Example.COM" and
// "ada@example.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserRepository interface {
	CreateUser(user *User) (*User, error)
	GetUserByID(id int64) (*User, error)
	ListUsers() ([]User, error)
	UpdateUser(user *User) (*User, error)
	DeleteUser(id int64) error
	EmailExists(email string) (bool, error)
}

type UserUseCase interface {
	CreateUser(name, email string) (*User, error)
	GetUserByID(id int64) (*User, error)
	ListUsers() ([]User, error)
	UpdateUser(id int64, name, email string) (*User, error)
	DeleteUser(id int64) error
}
