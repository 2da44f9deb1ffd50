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
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/payments"
)

type createPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type verifyPaymentRequest struct {
	GatewayOrderID string `json:"gatewayOrderId" binding:"required"`
	PaymentID      string `json:"paymentId" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
	AddressID      string `json:"addressId" binding:"required"`
}

// CreatePaymentIntent forwards the amount to the gateway and returns its
// response verbatim.
func CreatePaymentIntent(gateway *payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/payments/create"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		receipt := "rcpt_" + userID.Hex() + "_" + primitive.NewObjectID().Hex()
		resp, err := gateway.CreateOrder(req.Amount, receipt)
		if err != nil {
			log.Println("[PAYMENT] [ERROR] gateway order create failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "payment gateway error")
			return
		}

		log.Printf("[%s] intent created amount=%.2f", route, req.Amount)
		c.JSON(http.StatusOK, resp)
	}
}

// VerifyPayment checks the gateway signature and, on match, snapshots the
// caller's cart and chosen address into a new order and clears the cart.
// The order insert and the cart clear are two separate single-document
// writes; a crash in between leaves a paid order with an uncleared cart,
// which is detected by the duplicate gatewayOrderId check below rather
// than silently corrected.
func VerifyPayment(db *mongo.Database, gateway *payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/payments/verify"
		defer handlePanic(c, route)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req verifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if !gateway.VerifySignature(req.GatewayOrderID, req.PaymentID, req.Signature) {
			log.Println("[PAYMENT] [ERROR] signature mismatch for user:", userID.Hex())
			respondWithError(c, http.StatusBadRequest, route, "payment verification failed")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := db.Collection("orders").CountDocuments(ctx, bson.M{
			"payment.gatewayOrderId": req.GatewayOrderID,
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "payment already processed")
			return
		}

		profile, ok := loadProfile(ctx, db, c)
		if !ok {
			return
		}
		if len(profile.Cart) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "cart is empty")
			return
		}

		address, found := findAddress(profile.Addresses, strings.TrimSpace(req.AddressID))
		if !found {
			respondWithError(c, http.StatusBadRequest, route, "address not found")
			return
		}

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		items, err := snapshotCartItems(ctx, db, profile.Cart)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		totals := computeOrderTotals(items)

		now := time.Now()
		order := models.Order{
			UserID:          userID,
			CustomerName:    user.Name,
			Items:           items,
			ItemsTotal:      totals.ItemsTotal,
			PlatformFee:     totals.PlatformFee,
			Tax:             totals.Tax,
			TotalAmount:     totals.TotalAmount,
			ShippingAddress: address,
			Payment: models.PaymentInfo{
				GatewayOrderID: req.GatewayOrderID,
				PaymentID:      req.PaymentID,
				Signature:      req.Signature,
			},
			OrderStatus:   models.OrderProcessing,
			PaymentStatus: models.PaymentPaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			log.Println("[PAYMENT] [ERROR] order insert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		order.ID, _ = res.InsertedID.(primitive.ObjectID)

		_, err = db.Collection("profiles").UpdateByID(ctx, profile.ID, bson.M{
			"$set": bson.M{
				"cart":      []models.CartItem{},
				"updatedAt": now,
			},
		})
		if err != nil {
			log.Println("[PAYMENT] [ERROR] cart clear failed after order", order.ID.Hex(), ":", err)
		}

		log.Printf("[%s] order=%s total=%.2f user=%s", route, order.ID.Hex(), order.TotalAmount, userID.Hex())
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func findAddress(addresses []models.Address, id string) (models.Address, bool) {
	for _, address := range addresses {
		if address.ID == id {
			return address, true
		}
	}
	return models.Address{}, false
}

// snapshotCartItems copies cart lines into order items, resolving current
// product names and images. The line price (price at add time) is what the
// order keeps.
func snapshotCartItems(ctx context.Context, db *mongo.Database, cart []models.CartItem) ([]models.OrderItem, error) {
	ids := make([]primitive.ObjectID, 0, len(cart))
	for _, line := range cart {
		ids = append(ids, line.ProductID)
	}

	cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0, len(ids))
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	productByID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	items := make([]models.OrderItem, 0, len(cart))
	for _, line := range cart {
		product, exists := productByID[line.ProductID]
		if !exists {
			product = placeholderProduct(line.ProductID)
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      product.Name,
			Image:     image,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
		})
	}
	return items, nil
}
