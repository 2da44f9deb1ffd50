package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in the product document. Reviews are append only;
// average rating is computed by readers.
type Review struct {
	UserID  primitive.ObjectID `bson:"userId" json:"userId"`
	Name    string             `bson:"name" json:"name"`
	Rating  int                `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`
	Date    time.Time          `bson:"date" json:"date"`
}

// Product is the canonical flat shape: price lives on the product and the
// optional size/color option lists describe the selectable combinations.
// The chosen pair travels on cart and order lines.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Images      []string           `bson:"images" json:"images"`
	Sizes       StringList         `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Colors      StringList         `bson:"colors,omitempty" json:"colors,omitempty"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted,omitempty"`
	DeletedAt   *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductCategories is the fixed category set accepted at creation time.
var ProductCategories = []string{
	"Men",
	"Women",
	"Kids",
	"Footwear",
	"Accessories",
	"Electronics",
	"Home",
}

// ValidCategory reports whether name is one of the fixed product categories.
func ValidCategory(name string) bool {
	for _, category := range ProductCategories {
		if category == name {
			return true
		}
	}
	return false
}

// AverageRating computes the mean review rating, 0 when unreviewed.
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	total := 0
	for _, review := range p.Reviews {
		total += review.Rating
	}
	return float64(total) / float64(len(p.Reviews))
}
