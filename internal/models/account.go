package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a bank account or card the couple pays from. OwnerID is nil for
// joint accounts; set to a user id for a personal account.
type Account struct {
	ID        uuid.UUID  `db:"id"`
	CoupleID  uuid.UUID  `db:"couple_id"`
	Name      string     `db:"name"`
	OwnerID   *uuid.UUID `db:"owner_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// IsJoint reports whether the account belongs to the couple rather than a
// single partner.
func (a *Account) IsJoint() bool {
	return a.OwnerID == nil
}

// DefaultVisibility returns the visibility a template or transaction on this
// account gets when the caller does not choose one: joint accounts default to
// shared, personal accounts to private.
func (a *Account) DefaultVisibility() Visibility {
	if a.IsJoint() {
		return VisibilityShared
	}
	return VisibilityPrivate
}
