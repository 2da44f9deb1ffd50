package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselSlide is a homepage banner. DisplayOrder drives the client-side
// sort; reordering persists one update per slide.
type CarouselSlide struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Link          string             `bson:"link,omitempty" json:"link,omitempty"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	ImagePublicID string             `bson:"imagePublicId,omitempty" json:"-"`
	DisplayOrder  int                `bson:"displayOrder" json:"displayOrder"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
