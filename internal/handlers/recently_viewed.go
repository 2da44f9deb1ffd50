package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

type recentlyViewedRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// pushRecentlyViewed moves an already-present product to the front
// (without duplicating it) or prepends a new entry, then trims the list to
// the limit.
func pushRecentlyViewed(list []models.RecentlyViewedItem, productID primitive.ObjectID, viewedAt time.Time) []models.RecentlyViewedItem {
	updated := make([]models.RecentlyViewedItem, 0, len(list)+1)
	updated = append(updated, models.RecentlyViewedItem{ProductID: productID, ViewedAt: viewedAt})
	for _, item := range list {
		if item.ProductID == productID {
			continue
		}
		updated = append(updated, item)
	}
	if len(updated) > models.RecentlyViewedLimit {
		updated = updated[:models.RecentlyViewedLimit]
	}
	return updated
}

func GetRecentlyViewed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}

		if len(profile.RecentlyViewed) == 0 {
			c.JSON(http.StatusOK, gin.H{"data": []models.Product{}})
			return
		}

		ids := make([]primitive.ObjectID, 0, len(profile.RecentlyViewed))
		for _, item := range profile.RecentlyViewed {
			ids = append(ids, item.ProductID)
		}

		cursor, err := db.Collection("products").Find(ctx, bson.M{
			"_id":       bson.M{"$in": ids},
			"isDeleted": bson.M{"$ne": true},
		})
		if err != nil {
			log.Println("[RECENT] [ERROR] list products failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0, len(ids))
		if err := cursor.All(ctx, &products); err != nil {
			log.Println("[RECENT] [ERROR] decode products failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		productByID := make(map[primitive.ObjectID]models.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}
		ordered := make([]models.Product, 0, len(products))
		for _, item := range profile.RecentlyViewed {
			if product, exists := productByID[item.ProductID]; exists {
				ordered = append(ordered, product)
			}
		}

		c.JSON(http.StatusOK, gin.H{"data": ordered})
	}
}

func AddRecentlyViewed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recentlyViewedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ProductID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}

		updated := pushRecentlyViewed(profile.RecentlyViewed, productID, time.Now())

		_, err = db.Collection("profiles").UpdateByID(ctx, profile.ID, bson.M{
			"$set": bson.M{
				"recentlyViewed": updated,
				"updatedAt":      time.Now(),
			},
		})
		if err != nil {
			log.Println("[RECENT] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "recently viewed updated"})
	}
}
