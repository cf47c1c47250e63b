package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/middleware"
	"github.com/gamevault/game-store/internal/token"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	GameHandler     *GameHTTP
	CartHandler     *CartHTTP
	WishlistHandler *WishlistHTTP
	SearchHandler   *SearchHTTP
	Tokens          *token.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")
	api.Use(middleware.ResolveIdentity(d.Tokens))

	users := api.Group("/users")
	users.POST("/register", d.AuthHandler.Register)
	users.POST("/login", d.AuthHandler.Login)
	users.GET("/profile", d.AuthHandler.Profile)

	games := api.Group("/games")
	games.GET("", d.GameHandler.List)
	games.GET("/sale", d.GameHandler.OnSale)
	games.GET("/featured", d.GameHandler.Featured)
	games.GET("/rating", d.GameHandler.ByRating)
	games.GET("/search", d.GameHandler.Search)
	games.GET("/genre/:genre", d.GameHandler.ByGenre)
	games.GET("/platform/:platform", d.GameHandler.ByPlatform)
	games.GET("/:id", d.GameHandler.Get)
	games.POST("", d.GameHandler.Create)
	games.POST("/bulk", d.GameHandler.CreateBulk)
	games.POST("/delete-batch", d.GameHandler.DeleteBatch)
	games.PUT("/:id", d.GameHandler.Update)
	games.DELETE("/:id", d.GameHandler.Delete)
	games.DELETE("", d.GameHandler.DeleteAll)

	cart := api.Group("/cart")
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.GET("", d.CartHandler.GetCart)
	cart.GET("/count", d.CartHandler.GetCount)
	cart.PUT("/update", d.CartHandler.UpdateQuantity)
	cart.DELETE("/remove", d.CartHandler.RemoveFromCart)

	wishlist := api.Group("/wishlist")
	wishlist.POST("/add", d.WishlistHandler.Add)
	wishlist.POST("/toggle", d.WishlistHandler.Toggle)
	wishlist.GET("", d.WishlistHandler.Get)
	wishlist.GET("/count", d.WishlistHandler.GetCount)
	wishlist.GET("/check/:gameId", d.WishlistHandler.Check)
	wishlist.DELETE("/remove", d.WishlistHandler.Remove)

	if d.SearchHandler != nil {
		api.GET("/search", d.SearchHandler.Search)
	}
}
