package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/mock-interview/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenAccountRepository struct {
	db *gorm.DB
}

func NewTokenAccountRepository(db *gorm.DB) *TokenAccountRepository {
	return &TokenAccountRepository{db}
}

// SeedIfAbsent creates the account with the given balance unless it already
// exists. It reports whether a new row was written.
func (r *TokenAccountRepository) SeedIfAbsent(ctx context.Context, userID string, balance int) (bool, error) {
	account := model.TokenAccount{UserID: userID, Balance: balance}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&account)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *TokenAccountRepository) FindByUserID(ctx context.Context, userID string) (*model.TokenAccount, error) {
	var account model.TokenAccount
	err := r.db.WithContext(ctx).First(&account, "user_id = ?", userID).Error
	return &account, err
}

// ConsumeOne decrements the balance by one if it is positive. The conditional
// update is the only write path, so concurrent callers cannot overdraw.
func (r *TokenAccountRepository) ConsumeOne(ctx context.Context, userID string) (allowed bool, remaining int, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TokenAccount{}).
			Where("user_id = ? AND balance > 0", userID).
			Updates(map[string]any{
				"balance":    gorm.Expr("balance - 1"),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			allowed, remaining = false, 0
			return nil
		}

		var account model.TokenAccount
		if err := tx.First(&account, "user_id = ?", userID).Error; err != nil {
			return err
		}
		allowed, remaining = true, account.Balance
		return nil
	})
	return allowed, remaining, err
}
