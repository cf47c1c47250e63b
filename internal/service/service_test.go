package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/repo"
	"github.com/gamevault/game-store/internal/token"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.CartItem{}, &models.WishlistItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &repo.GormRepo{DB: db}
}

func newTestTokens() *token.Service {
	return token.NewService([]byte("test-secret"), 24*time.Hour)
}

func seedGame(t *testing.T, r *repo.GormRepo, g models.Game) models.Game {
	t.Helper()
	if err := r.DB.Create(&g).Error; err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}
	return g
}

func ptr(v float64) *float64 { return &v }
