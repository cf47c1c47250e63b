package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/pricing"
	"github.com/gamevault/game-store/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) applyPricing(g *models.Game) error {
	pct, err := pricing.DiscountPercentage(g.OriginalPrice, g.DiscountPrice)
	if err != nil {
		return err
	}
	if pct != nil {
		g.DiscountPercentage = pct
	}
	return nil
}

func (s *CatalogService) AddGame(ctx context.Context, g *models.Game) error {
	if g.Title == "" || g.Genre == "" || g.Platform == "" {
		return fmt.Errorf("title, genre and platform are required: %w", apperr.ErrInvalidArgument)
	}
	if err := s.applyPricing(g); err != nil {
		return err
	}
	if err := s.Repo.CreateGame(ctx, g); err != nil {
		return fmt.Errorf("create game: %v: %w", err, apperr.ErrInternal)
	}
	return nil
}

func (s *CatalogService) AddGames(ctx context.Context, games []models.Game) ([]models.Game, error) {
	if len(games) == 0 {
		return nil, fmt.Errorf("at least one game is required: %w", apperr.ErrInvalidArgument)
	}
	for i := range games {
		if err := s.applyPricing(&games[i]); err != nil {
			return nil, err
		}
	}
	created, err := s.Repo.CreateGames(ctx, games)
	if err != nil {
		return nil, fmt.Errorf("create games: %v: %w", err, apperr.ErrInternal)
	}
	return created, nil
}

func (s *CatalogService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.Repo.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d not found: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load game: %v: %w", err, apperr.ErrInternal)
	}
	return game, nil
}

func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.Repo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) UpdateGame(ctx context.Context, id uint, updated models.Game) (*models.Game, error) {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Title = updated.Title
	game.Genre = updated.Genre
	game.Platform = updated.Platform
	game.OriginalPrice = updated.OriginalPrice
	game.DiscountPrice = updated.DiscountPrice
	game.DiscountPercentage = updated.DiscountPercentage
	game.Rating = updated.Rating
	game.Image = updated.Image
	game.Badge = updated.Badge

	if err := s.applyPricing(game); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("save game: %v: %w", err, apperr.ErrInternal)
	}
	return game, nil
}

func (s *CatalogService) DeleteGame(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteGame(ctx, id)
	if err != nil {
		return fmt.Errorf("delete game: %v: %w", err, apperr.ErrInternal)
	}
	if rows == 0 {
		return fmt.Errorf("game %d not found: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (s *CatalogService) DeleteAllGames(ctx context.Context) (int64, error) {
	rows, err := s.Repo.DeleteAllGames(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete games: %v: %w", err, apperr.ErrInternal)
	}
	return rows, nil
}

func (s *CatalogService) DeleteGames(ctx context.Context, ids []uint) (int64, error) {
	rows, err := s.Repo.DeleteGamesByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete games: %v: %w", err, apperr.ErrInternal)
	}
	return rows, nil
}

func (s *CatalogService) GamesOnSale(ctx context.Context) ([]models.Game, error) {
	games, err := s.Repo.GamesOnSale(ctx)
	if err != nil {
		return nil, fmt.Errorf("sale games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) GamesByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	games, err := s.Repo.GamesByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("genre games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) GamesByPlatform(ctx context.Context, platform string) ([]models.Game, error) {
	games, err := s.Repo.GamesByPlatform(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("platform games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) GamesByMinRating(ctx context.Context, min float64) ([]models.Game, error) {
	if min < 0 || min > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5: %w", apperr.ErrInvalidArgument)
	}
	games, err := s.Repo.GamesByMinRating(ctx, min)
	if err != nil {
		return nil, fmt.Errorf("rating games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) FeaturedGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.Repo.GamesByBadge(ctx, "FEATURED")
	if err != nil {
		return nil, fmt.Errorf("featured games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}

func (s *CatalogService) SearchGames(ctx context.Context, title string) ([]models.Game, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", apperr.ErrInvalidArgument)
	}
	games, err := s.Repo.SearchGamesByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search games: %v: %w", err, apperr.ErrInternal)
	}
	return games, nil
}
