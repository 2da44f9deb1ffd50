package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

type addressRequest struct {
	Label   string `json:"label" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Pincode string `json:"pincode" binding:"required"`
	Country string `json:"country"`
}

func (r addressRequest) toAddress(id string) models.Address {
	return models.Address{
		ID:      id,
		Label:   strings.TrimSpace(r.Label),
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Street:  strings.TrimSpace(r.Street),
		City:    strings.TrimSpace(r.City),
		State:   strings.TrimSpace(r.State),
		Pincode: strings.TrimSpace(r.Pincode),
		Country: strings.TrimSpace(r.Country),
	}
}

// addressMatch selects the profile only when it holds an address with
// the given id.
func addressMatch(userID primitive.ObjectID, addressID string) bson.M {
	return bson.M{"userId": userID, "addresses.id": addressID}
}

func loadProfile(ctx context.Context, db *mongo.Database, c *gin.Context) (models.Profile, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.Profile{}, false
	}

	var profile models.Profile
	if err := db.Collection("profiles").FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		log.Println("[PROFILE] [ERROR] profile lookup failed:", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return models.Profile{}, false
	}
	return profile, true
}

func GetAddresses(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{"addresses": profile.Addresses})
	}
}

func CreateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		address := req.toAddress(uuid.NewString())

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("profiles").UpdateOne(ctx, bson.M{"userId": userID}, bson.M{
			"$push": bson.M{"addresses": address},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
		if err != nil {
			log.Println("[ADDRESS] [ERROR] insert address failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		log.Println("[ADDRESS] [INFO] address created:", address.ID)
		c.JSON(http.StatusCreated, gin.H{"address": address})
	}
}

func UpdateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		addressID := strings.TrimSpace(c.Param("id"))
		if addressID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		address := req.toAddress(addressID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("profiles").UpdateOne(ctx,
			addressMatch(userID, addressID),
			bson.M{"$set": bson.M{
				"addresses.$": address,
				"updatedAt":   time.Now(),
			}},
		)
		if err != nil {
			log.Println("[ADDRESS] [ERROR] update address failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}

		log.Println("[ADDRESS] [INFO] address updated:", addressID)
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}

func DeleteAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		addressID := strings.TrimSpace(c.Param("id"))
		if addressID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// match on the address id itself: $set on updatedAt always
		// modifies the profile, so ModifiedCount cannot tell a
		// successful pull from a no-op
		res, err := db.Collection("profiles").UpdateOne(ctx,
			addressMatch(userID, addressID),
			bson.M{
				"$pull": bson.M{"addresses": bson.M{"id": addressID}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			log.Println("[ADDRESS] [ERROR] delete address failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}

		log.Println("[ADDRESS] [INFO] address deleted:", addressID)
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}
