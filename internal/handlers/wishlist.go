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

type wishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// wishlistAddMatch selects the profile only when the product is not
// already on the wishlist, so the push cannot create a duplicate entry.
func wishlistAddMatch(userID, productID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "wishlist.productId": bson.M{"$ne": productID}}
}

func GetWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}

		if len(profile.Wishlist) == 0 {
			c.JSON(http.StatusOK, gin.H{"data": []models.Product{}})
			return
		}

		ids := make([]primitive.ObjectID, 0, len(profile.Wishlist))
		for _, item := range profile.Wishlist {
			ids = append(ids, item.ProductID)
		}

		cursor, err := db.Collection("products").Find(ctx, bson.M{
			"_id":       bson.M{"$in": ids},
			"isDeleted": bson.M{"$ne": true},
		})
		if err != nil {
			log.Println("[WISHLIST] [ERROR] list products failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0, len(ids))
		if err := cursor.All(ctx, &products); err != nil {
			log.Println("[WISHLIST] [ERROR] decode products failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		// preserve wishlist order
		productByID := make(map[primitive.ObjectID]models.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}
		ordered := make([]models.Product, 0, len(products))
		for _, item := range profile.Wishlist {
			if product, exists := productByID[item.ProductID]; exists {
				ordered = append(ordered, product)
			}
		}

		c.JSON(http.StatusOK, gin.H{"data": ordered})
	}
}

func AddToWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req wishlistRequest
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

		if err := db.Collection("products").FindOne(ctx, bson.M{
			"_id":       productID,
			"isDeleted": bson.M{"$ne": true},
		}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Println("[WISHLIST] [ERROR] product lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		// skip duplicates: only push when no entry for this product exists
		res, err := db.Collection("profiles").UpdateOne(ctx,
			wishlistAddMatch(userID, productID),
			bson.M{
				"$push": bson.M{"wishlist": models.WishlistItem{ProductID: productID, AddedAt: time.Now()}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			log.Println("[WISHLIST] [ERROR] add failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if res.MatchedCount == 0 {
			// no match means either a duplicate entry or no profile at all
			count, err := db.Collection("profiles").CountDocuments(ctx, bson.M{"userId": userID})
			if err != nil {
				log.Println("[WISHLIST] [ERROR] profile lookup failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			if count == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "already in wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "added to wishlist"})
	}
}

func RemoveFromWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("productId")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("profiles").UpdateOne(ctx,
			bson.M{"userId": userID},
			bson.M{
				"$pull": bson.M{"wishlist": bson.M{"productId": productID}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			log.Println("[WISHLIST] [ERROR] remove failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
	}
}
