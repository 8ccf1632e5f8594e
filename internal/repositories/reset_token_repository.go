package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type ResetTokenRepository interface {
	Insert(ctx context.Context, accountID uuid.UUID, tokenHash string, ttl time.Duration) error

	// Consume marks an unexpired, unconsumed token row as consumed and
	// returns its account id. Single-use: a second call with the same
	// hash returns uuid.Nil, false.
	Consume(ctx context.Context, tokenHash string) (uuid.UUID, bool, error)

	DeleteExpired(ctx context.Context) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Insert(ctx context.Context, accountID uuid.UUID, tokenHash string, ttl time.Duration) error {
	row := dbm.PasswordResetToken{
		AccountID: accountID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *resetTokenRepository) Consume(ctx context.Context, tokenHash string) (uuid.UUID, bool, error) {
	var accountID uuid.UUID
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row dbm.PasswordResetToken
		err := tx.
			Where("token_hash = ? AND consumed_at IS NULL AND expires_at > ?", tokenHash, time.Now()).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&row).Update("consumed_at", &now).Error; err != nil {
			return err
		}

		accountID = row.AccountID
		found = true
		return nil
	})

	return accountID, found, err
}

func (r *resetTokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&dbm.PasswordResetToken{}).Error
}
