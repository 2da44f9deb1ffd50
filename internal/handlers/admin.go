package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

// Dashboard returns the back-office summary counters.
func Dashboard(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/dashboard"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		userCount, err := db.Collection("users").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		productCount, err := db.Collection("products").CountDocuments(ctx, bson.M{
			"isDeleted": bson.M{"$ne": true},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		orderCount, err := db.Collection("orders").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// revenue counts paid orders only
		cursor, err := db.Collection("orders").Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentPaid}}},
			bson.D{{Key: "$group", Value: bson.M{
				"_id":     nil,
				"revenue": bson.M{"$sum": "$totalAmount"},
			}}},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		revenue := 0.0
		var result []bson.M
		if err := cursor.All(ctx, &result); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}
		if len(result) > 0 {
			if value, ok := result[0]["revenue"].(float64); ok {
				revenue = value
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"users":    userCount,
			"products": productCount,
			"orders":   orderCount,
			"revenue":  revenue,
		})
	}
}
