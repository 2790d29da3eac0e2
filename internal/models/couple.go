package models

import (
	"time"

	"github.com/google/uuid"
)

type Couple struct {
	ID         uuid.UUID `db:"id"`
	InviteCode string    `db:"invite_code"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
