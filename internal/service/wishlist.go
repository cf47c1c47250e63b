package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) AddToWishlist(ctx context.Context, userID, gameID uint) (*models.WishlistItem, error) {
	if userID == 0 || gameID == 0 {
		return nil, fmt.Errorf("user id and game id are required: %w", apperr.ErrInvalidArgument)
	}

	if _, err := s.Repo.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d not found: %w", gameID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load game: %v: %w", err, apperr.ErrInternal)
	}

	item, err := s.Repo.AddToWishlist(ctx, userID, gameID)
	if err != nil {
		// The unique (user_id, game_id) index also catches the case
		// where a concurrent add won the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("game already in wishlist: %w", apperr.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("add to wishlist: %v: %w", err, apperr.ErrInternal)
	}

	logging.FromContext(ctx).With("svc", "wishlist.add").
		Info("item added", "user_id", userID, "game_id", gameID)
	return item, nil
}

func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, gameID uint) error {
	rows, err := s.Repo.RemoveFromWishlist(ctx, userID, gameID)
	if err != nil {
		return fmt.Errorf("remove from wishlist: %v: %w", err, apperr.ErrInternal)
	}
	if rows == 0 {
		return fmt.Errorf("game not found in wishlist: %w", apperr.ErrNotFound)
	}
	return nil
}

// Toggle flips membership and reports the post-transition state: true
// when the game was just added, false when it was just removed.
func (s *WishlistService) Toggle(ctx context.Context, userID, gameID uint) (bool, error) {
	if userID == 0 || gameID == 0 {
		return false, fmt.Errorf("user id and game id are required: %w", apperr.ErrInvalidArgument)
	}

	if _, err := s.Repo.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("game %d not found: %w", gameID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("load game: %v: %w", err, apperr.ErrInternal)
	}

	added, err := s.Repo.ToggleWishlist(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("game already in wishlist: %w", apperr.ErrAlreadyExists)
		}
		return false, fmt.Errorf("toggle wishlist: %v: %w", err, apperr.ErrInternal)
	}
	return added, nil
}

func (s *WishlistService) IsInWishlist(ctx context.Context, userID, gameID uint) (bool, error) {
	present, err := s.Repo.IsInWishlist(ctx, userID, gameID)
	if err != nil {
		return false, fmt.Errorf("check wishlist: %v: %w", err, apperr.ErrInternal)
	}
	return present, nil
}

func (s *WishlistService) GetWishlistItems(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	items, err := s.Repo.GetWishlistItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %v: %w", err, apperr.ErrInternal)
	}
	return items, nil
}

func (s *WishlistService) GetWishlistCount(ctx context.Context, userID uint) (int, error) {
	count, err := s.Repo.GetWishlistCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count wishlist: %v: %w", err, apperr.ErrInternal)
	}
	return count, nil
}
