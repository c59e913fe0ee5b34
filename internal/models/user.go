package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns zero or more credit cards
type User struct {
	CreatedAt time.Time `db:"created_at"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	ID        uuid.UUID `db:"id"`
}
