package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/repo"
	"github.com/gamevault/game-store/internal/service"
	"github.com/gamevault/game-store/internal/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *token.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Game{}, &models.CartItem{}, &models.WishlistItem{}))

	gormRepo := &repo.GormRepo{DB: db}
	tokens := token.NewService([]byte("test-secret"), 24*time.Hour)

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:     &AuthHTTP{Svc: &service.UserService{Repo: gormRepo, Tokens: tokens}},
		GameHandler:     &GameHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		CartHandler:     &CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		WishlistHandler: &WishlistHTTP{Svc: &service.WishlistService{Repo: gormRepo}},
		Tokens:          tokens,
	})

	return &testEnv{T: t, E: e, DB: db, Tokens: tokens}
}

func (env *testEnv) do(method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder) map[string]any {
	env.T.Helper()
	var resp map[string]any
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (env *testEnv) seedGame(g models.Game) models.Game {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&g).Error)
	return g
}

func (env *testEnv) registerAndLogin(username, email, password string) string {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/users/register", map[string]string{
		"username": username, "email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/users/login", map[string]string{
		"credential": username, "password": password,
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code)

	tok, _ := env.decode(rec)["token"].(string)
	require.NotEmpty(env.T, tok)
	return tok
}

func TestRegisterLoginAndCartFlow(t *testing.T) {
	env := newTestEnv(t)

	game := env.seedGame(models.Game{Title: "Game Seven", Genre: "RPG", Platform: "PC", OriginalPrice: 50, DiscountPrice: func() *float64 { v := 40.0; return &v }()})

	// Register issues a usable token straight away.
	rec := env.do(http.MethodPost, "/api/users/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	t1, _ := env.decode(rec)["token"].(string)
	require.NotEmpty(t, t1)
	assert.True(t, env.Tokens.Verify(t1, "alice"))

	// Login issues a second independent token.
	rec = env.do(http.MethodPost, "/api/users/login", map[string]string{
		"credential": "alice", "password": "pw123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	t2, _ := env.decode(rec)["token"].(string)
	require.NotEmpty(t, t2)
	assert.True(t, env.Tokens.Verify(t2, "alice"))

	// Two adds merge into one row with quantity 2.
	for i := 0; i < 2; i++ {
		rec = env.do(http.MethodPost, "/api/cart/add", map[string]uint{"gameId": game.ID}, t2)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = env.do(http.MethodGet, "/api/cart", nil, t2)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(rec)
	assert.EqualValues(t, 2, resp["count"])
	assert.EqualValues(t, 80, resp["total"])

	items, ok := resp["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestCart_RequiresActor(t *testing.T) {
	env := newTestEnv(t)
	game := env.seedGame(models.Game{Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 10})

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]uint{"gameId": game.ID}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodGet, "/api/cart", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/api/cart/add", map[string]uint{"gameId": game.ID}, "tampered.token.value")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_UpdateAndRemove(t *testing.T) {
	env := newTestEnv(t)
	game := env.seedGame(models.Game{Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 10})
	tok := env.registerAndLogin("bob", "b@x.com", "pw123")

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]uint{"gameId": game.ID}, tok)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/cart/update", map[string]any{"gameId": game.ID, "quantity": 5}, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	body := env.decode(rec)
	assert.EqualValues(t, 5, body["cartItemCount"])
	assert.NotEmpty(t, body["message"])

	// Quantity zero deletes the row.
	rec = env.do(http.MethodPut, "/api/cart/update", map[string]any{"gameId": game.ID, "quantity": 0}, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, env.decode(rec)["cartItemCount"])

	// Updating a missing pair is a cart error.
	rec = env.do(http.MethodPut, "/api/cart/update", map[string]any{"gameId": game.ID, "quantity": 3}, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Removing an absent pair stays idempotent.
	rec = env.do(http.MethodDelete, "/api/cart/remove", map[string]uint{"gameId": game.ID}, tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWishlistFlow(t *testing.T) {
	env := newTestEnv(t)
	game := env.seedGame(models.Game{Title: "Game", Genre: "RPG", Platform: "PC", OriginalPrice: 10})
	tok := env.registerAndLogin("carol", "c@x.com", "pw123")

	rec := env.do(http.MethodPost, "/api/wishlist/toggle", map[string]uint{"gameId": game.ID}, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env.decode(rec)["inWishlist"])

	rec = env.do(http.MethodGet, "/api/wishlist/check/1", nil, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env.decode(rec)["inWishlist"])

	// Adding an already-present pair conflicts.
	rec = env.do(http.MethodPost, "/api/wishlist/add", map[string]uint{"gameId": game.ID}, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/wishlist/toggle", map[string]uint{"gameId": game.ID}, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, env.decode(rec)["inWishlist"])

	rec = env.do(http.MethodGet, "/api/wishlist/count", nil, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, env.decode(rec)["count"])

	// Removing from an empty wishlist is a 404.
	rec = env.do(http.MethodDelete, "/api/wishlist/remove", map[string]uint{"gameId": game.ID}, tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	tok := env.registerAndLogin("dave", "d@x.com", "pw123")

	rec := env.do(http.MethodGet, "/api/users/profile", nil, tok)
	require.Equal(t, http.StatusOK, rec.Code)

	user, ok := env.decode(rec)["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dave", user["username"])
	assert.NotContains(t, user, "passwordHash")

	rec = env.do(http.MethodGet, "/api/users/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGameEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/games", models.Game{
		Title: "Elden Ring", Genre: "RPG", Platform: "PS5", OriginalPrice: 60,
		DiscountPrice: func() *float64 { v := 45.0; return &v }(),
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := env.decode(rec)
	assert.EqualValues(t, 25, created["discountPercentage"])

	rec = env.do(http.MethodGet, "/api/games", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/games/sale", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var games []models.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &games))
	require.Len(t, games, 1)

	rec = env.do(http.MethodGet, "/api/games/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Discount above original is rejected.
	rec = env.do(http.MethodPost, "/api/games", models.Game{
		Title: "Broken", Genre: "RPG", Platform: "PC", OriginalPrice: 10,
		DiscountPrice: func() *float64 { v := 20.0; return &v }(),
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
