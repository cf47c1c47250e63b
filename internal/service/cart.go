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

type CartService struct {
	Repo *repo.GormRepo
}

// AddToCart merges repeated adds: an existing (user, game) row gains
// quantity 1, a missing one is created with quantity 1.
func (s *CartService) AddToCart(ctx context.Context, userID, gameID uint) (*models.CartItem, error) {
	if userID == 0 || gameID == 0 {
		return nil, fmt.Errorf("user id and game id are required: %w", apperr.ErrInvalidArgument)
	}

	if _, err := s.Repo.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d not found: %w", gameID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("load game: %v: %w", err, apperr.ErrInternal)
	}

	item, err := s.Repo.AddToCart(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %v: %w", err, apperr.ErrInternal)
	}

	logging.FromContext(ctx).With("svc", "cart.add").
		Info("item added", "user_id", userID, "game_id", gameID, "quantity", item.Quantity)
	return item, nil
}

// UpdateQuantity sets the quantity for the pair. Zero or negative
// quantity deletes the row (idempotently) and returns nil.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, gameID uint, quantity int) (*models.CartItem, error) {
	if userID == 0 || gameID == 0 {
		return nil, fmt.Errorf("user id and game id are required: %w", apperr.ErrInvalidArgument)
	}

	if quantity <= 0 {
		if err := s.RemoveFromCart(ctx, userID, gameID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.Repo.SetCartQuantity(ctx, userID, gameID, uint(quantity))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item not found in cart for user %d and game %d: %w", userID, gameID, apperr.ErrCart)
		}
		return nil, fmt.Errorf("update quantity: %v: %w", err, apperr.ErrInternal)
	}
	return item, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, gameID uint) error {
	if err := s.Repo.RemoveFromCart(ctx, userID, gameID); err != nil {
		return fmt.Errorf("remove from cart: %v: %w", err, apperr.ErrInternal)
	}
	return nil
}

func (s *CartService) GetCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items, err := s.Repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %v: %w", err, apperr.ErrInternal)
	}
	return items, nil
}

func (s *CartService) GetCartItemCount(ctx context.Context, userID uint) (int, error) {
	count, err := s.Repo.GetCartItemCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count cart: %v: %w", err, apperr.ErrInternal)
	}
	return count, nil
}

func (s *CartService) GetCartTotal(ctx context.Context, userID uint) (float64, error) {
	total, err := s.Repo.GetCartTotal(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("cart total: %v: %w", err, apperr.ErrInternal)
	}
	return total, nil
}
