package db_models

import (
	"github.com/google/uuid"
	"time"
)

// PasswordResetToken stores only the sha256 of the token handed to the
// user, so a leaked table cannot be replayed. Rows survive restarts and
// are safe across multiple instances, unlike an in-process map.
type PasswordResetToken struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	TokenHash  string    `gorm:"uniqueIndex"`
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}
