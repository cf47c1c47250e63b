package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/models"
)

func TestCatalogService_AddGame_ComputesDiscountPercentage(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	game := models.Game{Title: "Sale Game", Genre: "RPG", Platform: "PC", OriginalPrice: 100, DiscountPrice: ptr(75)}
	require.NoError(t, svc.AddGame(context.Background(), &game))

	require.NotNil(t, game.DiscountPercentage)
	assert.Equal(t, 25, *game.DiscountPercentage)
	assert.NotZero(t, game.ID)
}

func TestCatalogService_AddGame_InvalidPricing(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	game := models.Game{Title: "Broken", Genre: "RPG", Platform: "PC", OriginalPrice: 50, DiscountPrice: ptr(60)}
	err := svc.AddGame(context.Background(), &game)
	require.ErrorIs(t, err, apperr.ErrInvalidPricing)
}

func TestCatalogService_AddGame_MissingFields(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	err := svc.AddGame(context.Background(), &models.Game{Title: "No Genre", Platform: "PC"})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCatalogService_UpdateGame_RecomputesPercentage(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	game := seedGame(t, r, models.Game{Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 100})

	updated, err := svc.UpdateGame(context.Background(), game.ID, models.Game{
		Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 100, DiscountPrice: ptr(50),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DiscountPercentage)
	assert.Equal(t, 50, *updated.DiscountPercentage)
}

func TestCatalogService_GetGame_NotFound(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.GetGame(context.Background(), 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCatalogService_DeleteGame(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	game := seedGame(t, r, models.Game{Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 10})

	require.NoError(t, svc.DeleteGame(context.Background(), game.ID))

	err := svc.DeleteGame(context.Background(), game.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCatalogService_Filters(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	seedGame(t, r, models.Game{Title: "Elden Ring", Genre: "RPG", Platform: "PS5", OriginalPrice: 60, DiscountPrice: ptr(45), Rating: 4.8, Badge: "SALE"})
	seedGame(t, r, models.Game{Title: "Mario Kart", Genre: "Racing", Platform: "Switch", OriginalPrice: 50, Rating: 4.5, Badge: "FEATURED"})
	seedGame(t, r, models.Game{Title: "Ring Fit", Genre: "Sports", Platform: "Switch", OriginalPrice: 70, Rating: 3.9})

	onSale, err := svc.GamesOnSale(context.Background())
	require.NoError(t, err)
	require.Len(t, onSale, 1)
	assert.Equal(t, "Elden Ring", onSale[0].Title)

	byGenre, err := svc.GamesByGenre(context.Background(), "rpg")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)

	byPlatform, err := svc.GamesByPlatform(context.Background(), "switch")
	require.NoError(t, err)
	assert.Len(t, byPlatform, 2)

	byRating, err := svc.GamesByMinRating(context.Background(), 4.0)
	require.NoError(t, err)
	assert.Len(t, byRating, 2)

	featured, err := svc.FeaturedGames(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Mario Kart", featured[0].Title)

	search, err := svc.SearchGames(context.Background(), "ring")
	require.NoError(t, err)
	assert.Len(t, search, 2)
}

func TestCatalogService_GamesByMinRating_OutOfRange(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.GamesByMinRating(context.Background(), 6)
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCatalogService_BulkAddAndBatchDelete(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	created, err := svc.AddGames(context.Background(), []models.Game{
		{Title: "One", Genre: "RPG", Platform: "PC", OriginalPrice: 10},
		{Title: "Two", Genre: "RPG", Platform: "PC", OriginalPrice: 20, DiscountPrice: ptr(10)},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.NotNil(t, created[1].DiscountPercentage)
	assert.Equal(t, 50, *created[1].DiscountPercentage)

	deleted, err := svc.DeleteGames(context.Background(), []uint{created[0].ID, created[1].ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
