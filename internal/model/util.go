package model

import "github.com/google/uuid"

// NewID generates a globally unique identifier for a new row
func NewID() string {
	return uuid.New().String()
}
