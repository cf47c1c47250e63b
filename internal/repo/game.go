package repo

import (
	"context"
	"strings"

	"github.com/gamevault/game-store/internal/models"
)

func (r *GormRepo) CreateGame(ctx context.Context, g *models.Game) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *GormRepo) CreateGames(ctx context.Context, games []models.Game) ([]models.Game, error) {
	if err := r.DB.WithContext(ctx).Create(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GormRepo) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.DB.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GormRepo) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GormRepo) SaveGame(ctx context.Context, g *models.Game) error {
	return r.DB.WithContext(ctx).Save(g).Error
}

func (r *GormRepo) DeleteGame(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Game{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) DeleteAllGames(ctx context.Context) (int64, error) {
	res := r.DB.WithContext(ctx).Where("1 = 1").Delete(&models.Game{})
	return res.RowsAffected, res.Error
}

func (r *GormRepo) DeleteGamesByIDs(ctx context.Context, ids []uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Game{}, ids)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) GamesOnSale(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).
		Where("discount_price IS NOT NULL AND discount_price < original_price").
		Find(&games).Error
	return games, err
}

func (r *GormRepo) GamesByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).
		Where("LOWER(genre) = ?", strings.ToLower(genre)).
		Find(&games).Error
	return games, err
}

func (r *GormRepo) GamesByPlatform(ctx context.Context, platform string) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).
		Where("LOWER(platform) = ?", strings.ToLower(platform)).
		Find(&games).Error
	return games, err
}

func (r *GormRepo) GamesByMinRating(ctx context.Context, min float64) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).Where("rating >= ?", min).Find(&games).Error
	return games, err
}

func (r *GormRepo) GamesByBadge(ctx context.Context, badge string) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).
		Where("LOWER(badge) = ?", strings.ToLower(badge)).
		Find(&games).Error
	return games, err
}

func (r *GormRepo) SearchGamesByTitle(ctx context.Context, title string) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%").
		Find(&games).Error
	return games, err
}
