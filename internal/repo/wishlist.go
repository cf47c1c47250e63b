package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/models"
)

func (r *GormRepo) AddToWishlist(ctx context.Context, userID, gameID uint) (*models.WishlistItem, error) {
	item := models.WishlistItem{UserID: userID, GameID: gameID}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Preload("Game").First(&item, item.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) RemoveFromWishlist(ctx context.Context, userID, gameID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}

// ToggleWishlist flips membership for the pair inside one transaction.
// Concurrent toggles serialize on the unique (user_id, game_id) index:
// the loser of a double add surfaces gorm.ErrDuplicatedKey to the
// service layer, a double remove deletes zero rows and stays a no-op.
func (r *GormRepo) ToggleWishlist(ctx context.Context, userID, gameID uint) (bool, error) {
	added := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WishlistItem
		err := tx.Where("user_id = ? AND game_id = ?", userID, gameID).
			First(&existing).Error
		switch {
		case err == nil:
			added = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&models.WishlistItem{UserID: userID, GameID: gameID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r *GormRepo) IsInWishlist(ctx context.Context, userID, gameID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormRepo) GetWishlistItems(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.DB.WithContext(ctx).Preload("Game").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetWishlistCount(ctx context.Context, userID uint) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}
