package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Game struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement"         json:"id"`
	Title              string   `gorm:"not null"                         json:"title"`
	Genre              string   `gorm:"not null"                         json:"genre"`
	Platform           string   `gorm:"not null"                         json:"platform"`
	OriginalPrice      float64  `gorm:"not null;check:original_price>=0" json:"originalPrice"`
	DiscountPrice      *float64 `gorm:"check:discount_price>=0"          json:"discountPrice,omitempty"`
	DiscountPercentage *int     `json:"discountPercentage,omitempty"`
	Rating             float64  `gorm:"check:rating>=0 AND rating<=5"    json:"rating"`
	Image              string   `json:"image"`
	Badge              string   `json:"badge"`
}

type CartItem struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID   uint      `gorm:"uniqueIndex:idx_cart_user_game;not null" json:"user_id"`
	GameID   uint      `gorm:"uniqueIndex:idx_cart_user_game;not null" json:"game_id"`
	Game     Game      `gorm:"foreignKey:GameID"                       json:"game"`
	Quantity uint      `gorm:"default:1;check:quantity>0"              json:"quantity"`
	AddedAt  time.Time `gorm:"autoCreateTime"                          json:"added_at"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wish_user_game;not null" json:"user_id"`
	GameID    uint      `gorm:"uniqueIndex:idx_wish_user_game;not null" json:"game_id"`
	Game      Game      `gorm:"foreignKey:GameID"                       json:"game"`
	AddedDate time.Time `gorm:"autoCreateTime"                          json:"added_date"`
}
