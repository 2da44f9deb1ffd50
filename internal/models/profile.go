package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecentlyViewedLimit bounds the recently-viewed ring; the oldest entries
// are dropped once the list is full.
const RecentlyViewedLimit = 20

// Address is a shipping address entry inside a profile.
type Address struct {
	ID      string `bson:"id" json:"id"`
	Label   string `bson:"label" json:"label"`
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode" json:"pincode"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// CartItem is a single cart line. Line identity is the
// (productId, size, color) triple; Price is the price at add time.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	// size and color always persist, empty or not, so the
	// (productId, size, color) line filter can match on equality
	Size    string    `bson:"size" json:"size,omitempty"`
	Color   string    `bson:"color" json:"color,omitempty"`
	Price   float64   `bson:"price" json:"price"`
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
}

type WishlistItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

type RecentlyViewedItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	ViewedAt  time.Time          `bson:"viewedAt" json:"viewedAt"`
}

type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Coupon struct {
	Code      string    `bson:"code" json:"code"`
	Discount  float64   `bson:"discount" json:"discount"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	Used      bool      `bson:"used" json:"used"`
}

type GiftCard struct {
	Code    string  `bson:"code" json:"code"`
	Balance float64 `bson:"balance" json:"balance"`
}

// Profile holds the per-user sub-collections. Exactly one profile exists
// per user (unique index on userId).
type Profile struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID   `bson:"userId" json:"userId"`
	Addresses      []Address            `bson:"addresses" json:"addresses"`
	Wishlist       []WishlistItem       `bson:"wishlist" json:"wishlist"`
	Cart           []CartItem           `bson:"cart" json:"cart"`
	RecentlyViewed []RecentlyViewedItem `bson:"recentlyViewed" json:"recentlyViewed"`
	Notifications  []Notification       `bson:"notifications" json:"notifications"`
	Coupons        []Coupon             `bson:"coupons" json:"coupons"`
	GiftCards      []GiftCard           `bson:"giftCards" json:"giftCards"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// NewProfile returns an empty profile for a freshly registered user.
func NewProfile(userID primitive.ObjectID) Profile {
	now := time.Now()
	return Profile{
		UserID:         userID,
		Addresses:      []Address{},
		Wishlist:       []WishlistItem{},
		Cart:           []CartItem{},
		RecentlyViewed: []RecentlyViewedItem{},
		Notifications:  []Notification{},
		Coupons:        []Coupon{},
		GiftCards:      []GiftCard{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
