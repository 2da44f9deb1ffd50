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

type cartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type cartUpdateRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type cartRemoveRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// cartLine is the populated read shape: the stored line plus the current
// product document, so price and availability shown to the client always
// reflect the catalog (the line keeps price-at-add-time).
type cartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Size     string         `json:"size,omitempty"`
	Color    string         `json:"color,omitempty"`
	Price    float64        `json:"price"`
	AddedAt  time.Time      `json:"addedAt"`
}

// cartLineMatch builds the profile filter selecting one cart line by its
// identity triple.
func cartLineMatch(userID, productID primitive.ObjectID, size, color string) bson.M {
	return bson.M{
		"userId": userID,
		"cart": bson.M{"$elemMatch": bson.M{
			"productId": productID,
			"size":      size,
			"color":     color,
		}},
	}
}

// cartLinePull builds the $pull clause removing one line by its triple.
func cartLinePull(productID primitive.ObjectID, size, color string) bson.M {
	return bson.M{"cart": bson.M{
		"productId": productID,
		"size":      size,
		"color":     color,
	}}
}

func GetCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/cart"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}

		if len(profile.Cart) == 0 {
			c.JSON(http.StatusOK, gin.H{"data": []cartLine{}})
			return
		}

		ids := make([]primitive.ObjectID, 0, len(profile.Cart))
		for _, item := range profile.Cart {
			ids = append(ids, item.ProductID)
		}

		cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0, len(ids))
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		productByID := make(map[primitive.ObjectID]models.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}

		lines := make([]cartLine, 0, len(profile.Cart))
		for _, item := range profile.Cart {
			product, exists := productByID[item.ProductID]
			if !exists {
				product = placeholderProduct(item.ProductID)
			}
			lines = append(lines, cartLine{
				Product:  product,
				Quantity: item.Quantity,
				Size:     item.Size,
				Color:    item.Color,
				Price:    item.Price,
				AddedAt:  item.AddedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"data": lines})
	}
}

func AddToCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/cart/add"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req cartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ProductID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		size := strings.TrimSpace(req.Size)
		color := strings.TrimSpace(req.Color)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{
			"_id":       productID,
			"isDeleted": bson.M{"$ne": true},
		}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// merge path: increment quantity on the matching
		// (productId, size, color) line
		res, err := db.Collection("profiles").UpdateOne(ctx,
			cartLineMatch(userID, productID, size, color),
			bson.M{
				"$inc": bson.M{"cart.$.quantity": req.Quantity},
				"$set": bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount > 0 {
			log.Printf("[%s] merged line product=%s qty+=%d", route, productID.Hex(), req.Quantity)
			c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
			return
		}

		// no existing line: append a new one with price at add time
		line := models.CartItem{
			ProductID: productID,
			Quantity:  req.Quantity,
			Size:      size,
			Color:     color,
			Price:     product.Price,
			AddedAt:   time.Now(),
		}

		res, err = db.Collection("profiles").UpdateOne(ctx,
			bson.M{"userId": userID},
			bson.M{
				"$push": bson.M{"cart": line},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "profile not found")
			return
		}

		log.Printf("[%s] new line product=%s qty=%d", route, productID.Hex(), req.Quantity)
		c.JSON(http.StatusCreated, gin.H{"message": "added to cart"})
	}
}

func UpdateCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/cart/update"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req cartUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ProductID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("profiles").UpdateOne(ctx,
			cartLineMatch(userID, productID, strings.TrimSpace(req.Size), strings.TrimSpace(req.Color)),
			bson.M{"$set": bson.M{
				"cart.$.quantity": req.Quantity,
				"updatedAt":       time.Now(),
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "cart item not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
	}
}

// RemoveFromCart pulls the matching line. Removing a line that does not
// exist still succeeds (idempotent delete).
func RemoveFromCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/cart/remove"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req cartRemoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ProductID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("profiles").UpdateOne(ctx,
			bson.M{"userId": userID},
			bson.M{
				"$pull": cartLinePull(productID, strings.TrimSpace(req.Size), strings.TrimSpace(req.Color)),
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "removed from cart"})
	}
}

func ClearCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/cart/clear"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("profiles").UpdateOne(ctx,
			bson.M{"userId": userID},
			bson.M{"$set": bson.M{
				"cart":      []models.CartItem{},
				"updatedAt": time.Now(),
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
