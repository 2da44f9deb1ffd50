package handlers

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/media"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

const productImageFolder = "modex/products"

/*
=======================
  INPUT STRUCT
=======================
*/

type multipartProductInput struct {
	Name           string
	NameSet        bool
	Description    string
	DescriptionSet bool
	Price          float64
	PriceSet       bool
	Category       string
	CategorySet    bool
	Sizes          []string
	SizesSet       bool
	Colors         []string
	ColorsSet      bool
	Brand          string
	BrandSet       bool
	Featured       bool
	FeaturedSet    bool
	InStock        bool
	InStockSet     bool
	Images         []*multipart.FileHeader
}

func parseBoolValue(value string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(value))
}

func parseMultipartProductRequest(c *gin.Context) (multipartProductInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		log.Println("[PRODUCT] [ERROR] multipart parse failed:", err)
		return multipartProductInput{}, err
	}

	input := multipartProductInput{}

	// ---- STRING FIELDS ----

	if value, ok := c.GetPostForm("name"); ok {
		input.Name = strings.TrimSpace(value)
		input.NameSet = true
	}

	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("brand"); ok {
		input.Brand = strings.TrimSpace(value)
		input.BrandSet = true
	}

	if value, ok := c.GetPostForm("category"); ok {
		input.Category = strings.TrimSpace(value)
		input.CategorySet = true
	}

	// ---- NUMBER FIELDS ----

	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.Price = parsed
		input.PriceSet = true
	}

	// ---- BOOL FIELDS ----

	if value, ok := c.GetPostForm("featured"); ok {
		parsed, err := parseBoolValue(value)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.Featured = parsed
		input.FeaturedSet = true
	}

	if value, ok := c.GetPostForm("inStock"); ok {
		parsed, err := parseBoolValue(value)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.InStock = parsed
		input.InStockSet = true
	}

	// ---- OPTION LISTS ----

	if sizes := c.PostFormArray("sizes"); len(sizes) > 0 {
		input.Sizes = normalizeOptionValues(sizes)
		input.SizesSet = true
	}

	if colors := c.PostFormArray("colors"); len(colors) > 0 {
		input.Colors = normalizeOptionValues(colors)
		input.ColorsSet = true
	}

	// ---- IMAGE FILES ----

	if c.Request.MultipartForm != nil {
		input.Images = c.Request.MultipartForm.File["images"]
	}

	return input, nil
}

func normalizeOptionValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// uploadProductImages pushes every provided file to the media host and
// returns the stored URLs.
func uploadProductImages(ctx context.Context, uploads *media.Service, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		url, _, err := uploads.UploadImage(ctx, file, productImageFolder)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

/*
=======================
  ADMIN HANDLERS
=======================
*/

func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/products"
		defer handlePanic(c, route)

		filter := bson.M{"isDeleted": bson.M{"$ne": true}}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": products})
	}
}

func CreateProduct(db *mongo.Database, uploads *media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/products"
		defer handlePanic(c, route)

		input, err := parseMultipartProductRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid form data")
			return
		}

		if input.Name == "" || !input.PriceSet || input.Category == "" {
			respondWithError(c, http.StatusBadRequest, route, "name, price and category are required")
			return
		}
		if input.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be greater than 0")
			return
		}
		if !models.ValidCategory(input.Category) {
			respondWithError(c, http.StatusBadRequest, route, "unknown category")
			return
		}

		urls, err := uploadProductImages(c.Request.Context(), uploads, input.Images)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "image upload failed")
			return
		}

		inStock := true
		if input.InStockSet {
			inStock = input.InStock
		}

		now := time.Now()
		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Images:      urls,
			Sizes:       input.Sizes,
			Colors:      input.Colors,
			Brand:       input.Brand,
			Featured:    input.Featured,
			InStock:     inStock,
			Reviews:     []models.Review{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		product.ID, _ = res.InsertedID.(primitive.ObjectID)

		log.Printf("[%s] created product=%s images=%d", route, product.ID.Hex(), len(urls))
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *mongo.Database, uploads *media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		input, err := parseMultipartProductRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid form data")
			return
		}

		set := bson.M{"updatedAt": time.Now()}

		if input.NameSet {
			if input.Name == "" {
				respondWithError(c, http.StatusBadRequest, route, "name cannot be empty")
				return
			}
			set["name"] = input.Name
		}
		if input.DescriptionSet {
			set["description"] = input.Description
		}
		if input.PriceSet {
			if input.Price <= 0 {
				respondWithError(c, http.StatusBadRequest, route, "price must be greater than 0")
				return
			}
			set["price"] = input.Price
		}
		if input.CategorySet {
			if !models.ValidCategory(input.Category) {
				respondWithError(c, http.StatusBadRequest, route, "unknown category")
				return
			}
			set["category"] = input.Category
		}
		if input.SizesSet {
			set["sizes"] = input.Sizes
		}
		if input.ColorsSet {
			set["colors"] = input.Colors
		}
		if input.BrandSet {
			set["brand"] = input.Brand
		}
		if input.FeaturedSet {
			set["featured"] = input.Featured
		}
		if input.InStockSet {
			set["inStock"] = input.InStock
		}

		update := bson.M{"$set": set}

		if len(input.Images) > 0 {
			urls, err := uploadProductImages(c.Request.Context(), uploads, input.Images)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "image upload failed")
				return
			}
			update["$push"] = bson.M{"images": bson.M{"$each": urls}}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").UpdateOne(ctx,
			bson.M{"_id": productID, "isDeleted": bson.M{"$ne": true}},
			update,
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		var product models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] updated product=%s", route, productID.Hex())
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes so existing order items keep resolving to a
// placeholder instead of breaking.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		now := time.Now()
		res, err := db.Collection("products").UpdateOne(ctx,
			bson.M{"_id": productID, "isDeleted": bson.M{"$ne": true}},
			bson.M{"$set": bson.M{
				"isDeleted": true,
				"deletedAt": now,
				"updatedAt": now,
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		log.Printf("[%s] deleted product=%s", route, productID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
