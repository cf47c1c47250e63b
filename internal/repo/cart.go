package repo

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gamevault/game-store/internal/models"
)

// AddToCart merges repeated adds for the same (user, game) pair into one
// row via an atomic upsert on the unique (user_id, game_id) index: a
// concurrent first add that loses the insert race still lands as an
// increment instead of a duplicate-key error.
func (r *GormRepo) AddToCart(ctx context.Context, userID, gameID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.CartItem{UserID: userID, GameID: gameID, Quantity: 1}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + 1")}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		return tx.Preload("Game").
			Where("user_id = ? AND game_id = ?", userID, gameID).
			First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, userID, gameID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Preload("Game").
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) SetCartQuantity(ctx context.Context, userID, gameID, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND game_id = ?", userID, gameID).
			Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Game").
			Where("user_id = ? AND game_id = ?", userID, gameID).
			First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart is idempotent: deleting an absent pair is not an error.
func (r *GormRepo) RemoveFromCart(ctx context.Context, userID, gameID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) GetCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).Preload("Game").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartItemCount(ctx context.Context, userID uint) (int, error) {
	var count sql.NullInt64
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Select("SUM(quantity)").
		Where("user_id = ?", userID).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count.Int64), nil
}

// GetCartTotal sums quantity * current price, preferring the discount
// price when set.
func (r *GormRepo) GetCartTotal(ctx context.Context, userID uint) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Select("SUM(cart_items.quantity * COALESCE(games.discount_price, games.original_price))").
		Joins("JOIN games ON games.id = cart_items.game_id").
		Where("cart_items.user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
