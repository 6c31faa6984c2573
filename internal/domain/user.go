package domain

import "time"

// User is an account identified by email. CartID references the cart service;
// every new account starts with cart 1.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CartID       int       `json:"cartId"`
	CreatedAt    time.Time `json:"-"`
}
