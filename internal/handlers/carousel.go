package handlers

import (
	"context"
	"log"
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

const carouselImageFolder = "modex/carousel"

func GetCarousel(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/carousel"
		defer handlePanic(c, route)

		opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("carousel").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		slides := make([]models.CarouselSlide, 0)
		if err := cursor.All(ctx, &slides); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, slides)
	}
}

func CreateCarouselSlide(db *mongo.Database, uploads *media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/carousel"
		defer handlePanic(c, route)

		title := strings.TrimSpace(c.PostForm("title"))
		if title == "" {
			respondWithError(c, http.StatusBadRequest, route, "title is required")
			return
		}

		displayOrder := 0
		if value := strings.TrimSpace(c.PostForm("displayOrder")); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid displayOrder")
				return
			}
			displayOrder = parsed
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "image is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "image could not be read")
			return
		}
		defer file.Close()

		imageURL, publicID, err := uploads.UploadImage(c.Request.Context(), file, carouselImageFolder)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "image upload failed")
			return
		}

		now := time.Now()
		slide := models.CarouselSlide{
			Title:         title,
			Description:   strings.TrimSpace(c.PostForm("description")),
			Link:          strings.TrimSpace(c.PostForm("link")),
			ImageURL:      imageURL,
			ImagePublicID: publicID,
			DisplayOrder:  displayOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("carousel").InsertOne(ctx, slide)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		slide.ID, _ = res.InsertedID.(primitive.ObjectID)

		log.Printf("[%s] slide created id=%s", route, slide.ID.Hex())
		c.JSON(http.StatusCreated, slide)
	}
}

// UpdateCarouselSlide replaces fields in place; a new image uploads first
// and the old media-host asset is destroyed after the document write.
func UpdateCarouselSlide(db *mongo.Database, uploads *media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/carousel/:id"
		defer handlePanic(c, route)

		slideID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var slide models.CarouselSlide
		err = db.Collection("carousel").FindOne(ctx, bson.M{"_id": slideID}).Decode(&slide)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "slide not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		if value, ok := c.GetPostForm("title"); ok {
			title := strings.TrimSpace(value)
			if title == "" {
				respondWithError(c, http.StatusBadRequest, route, "title cannot be empty")
				return
			}
			set["title"] = title
		}
		if value, ok := c.GetPostForm("description"); ok {
			set["description"] = strings.TrimSpace(value)
		}
		if value, ok := c.GetPostForm("link"); ok {
			set["link"] = strings.TrimSpace(value)
		}
		if value, ok := c.GetPostForm("displayOrder"); ok {
			parsed, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid displayOrder")
				return
			}
			set["displayOrder"] = parsed
		}

		oldPublicID := ""
		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "image could not be read")
				return
			}

			imageURL, publicID, err := uploads.UploadImage(c.Request.Context(), file, carouselImageFolder)
			file.Close()
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "image upload failed")
				return
			}

			set["imageUrl"] = imageURL
			set["imagePublicId"] = publicID
			oldPublicID = slide.ImagePublicID
		}

		if _, err := db.Collection("carousel").UpdateByID(ctx, slideID, bson.M{"$set": set}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if oldPublicID != "" {
			_ = uploads.DeleteImage(c.Request.Context(), oldPublicID)
		}

		var updated models.CarouselSlide
		if err := db.Collection("carousel").FindOne(ctx, bson.M{"_id": slideID}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteCarouselSlide(db *mongo.Database, uploads *media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/carousel/:id"
		defer handlePanic(c, route)

		slideID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var slide models.CarouselSlide
		err = db.Collection("carousel").FindOne(ctx, bson.M{"_id": slideID}).Decode(&slide)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "slide not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if _, err := db.Collection("carousel").DeleteOne(ctx, bson.M{"_id": slideID}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		_ = uploads.DeleteImage(c.Request.Context(), slide.ImagePublicID)

		log.Printf("[%s] slide deleted id=%s", route, slideID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "slide deleted"})
	}
}

type reorderEntry struct {
	ID           string `json:"id" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

type reorderRequest struct {
	Slides []reorderEntry `json:"slides" binding:"required,min=1,dive"`
}

// parseReorderEntries validates ids and rejects duplicates before any
// write happens.
func parseReorderEntries(entries []reorderEntry) (map[primitive.ObjectID]int, error) {
	orders := make(map[primitive.ObjectID]int, len(entries))
	for _, entry := range entries {
		slideID, err := primitive.ObjectIDFromHex(strings.TrimSpace(entry.ID))
		if err != nil {
			return nil, err
		}
		if _, exists := orders[slideID]; exists {
			return nil, errDuplicateSlide
		}
		orders[slideID] = entry.DisplayOrder
	}
	return orders, nil
}

var errDuplicateSlide = &duplicateSlideError{}

type duplicateSlideError struct{}

func (e *duplicateSlideError) Error() string { return "duplicate slide id" }

// ReorderCarousel persists a drag-reorder with one update per slide; the
// batch is not atomic.
func ReorderCarousel(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/carousel/reorder"
		defer handlePanic(c, route)

		var req reorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		orders, err := parseReorderEntries(req.Slides)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		updated := 0
		for slideID, displayOrder := range orders {
			res, err := db.Collection("carousel").UpdateByID(ctx, slideID, bson.M{
				"$set": bson.M{
					"displayOrder": displayOrder,
					"updatedAt":    time.Now(),
				},
			})
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			updated += int(res.MatchedCount)
		}

		log.Printf("[%s] reordered %d slides", route, updated)
		c.JSON(http.StatusOK, gin.H{"updated": updated})
	}
}
