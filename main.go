package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/config"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/database"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/handlers"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/media"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/middleware"
	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/payments"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureProfileIndexes(db); err != nil {
		log.Printf("profile index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureCarouselIndexes(db); err != nil {
		log.Printf("carousel index warning: %v", err)
	}

	uploads, err := media.NewService(
		config.AppEnv.CloudinaryCloudName,
		config.AppEnv.CloudinaryAPIKey,
		config.AppEnv.CloudinaryAPISecret,
	)
	if err != nil {
		log.Fatal("cloudinary init failed:", err)
	}

	gateway := payments.NewGateway(config.AppEnv.RazorpayKeyID, config.AppEnv.RazorpayKeySecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppEnv.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	jwtSecret := config.AppEnv.JWTSecret
	accessTTL := config.AppEnv.AccessTokenTTL

	users := r.Group("/api/users")
	{
		users.POST("/register", handlers.Register(db, jwtSecret, config.AppEnv.AdminSecret, accessTTL))
		users.POST("/login", handlers.Login(db, jwtSecret, accessTTL))
		users.POST("/admin-login", handlers.AdminLogin(db, jwtSecret, accessTTL))
		users.GET("/google", handlers.GoogleLogin(
			config.AppEnv.GoogleClientID,
			config.AppEnv.GoogleClientSecret,
			config.AppEnv.GoogleCallbackURL,
		))
		users.GET("/google/callback", handlers.GoogleCallback(
			db,
			config.AppEnv.GoogleClientID,
			config.AppEnv.GoogleClientSecret,
			config.AppEnv.GoogleCallbackURL,
			config.AppEnv.FrontendURL,
			jwtSecret,
			accessTTL,
		))
		users.GET("/me", middleware.UserAuth(jwtSecret), handlers.GetMe(db))
	}

	r.GET("/api/products", handlers.GetProducts(db))
	r.GET("/api/products/:id", handlers.GetProduct(db))
	r.POST("/api/products/:id/reviews", middleware.UserAuth(jwtSecret), handlers.AddReview(db))

	r.GET("/api/category", handlers.GetCategories(db))
	r.GET("/api/category/:id", handlers.GetCategory(db))

	r.GET("/api/carousel", handlers.GetCarousel(db))

	cart := r.Group("/api/cart")
	cart.Use(middleware.UserAuth(jwtSecret))
	{
		cart.GET("", handlers.GetCart(db))
		cart.POST("/add", handlers.AddToCart(db))
		cart.PUT("/update", handlers.UpdateCartItem(db))
		cart.DELETE("/remove", handlers.RemoveFromCart(db))
		cart.DELETE("/clear", handlers.ClearCart(db))
	}

	wishlist := r.Group("/api/wishlist")
	wishlist.Use(middleware.UserAuth(jwtSecret))
	{
		wishlist.GET("", handlers.GetWishlist(db))
		wishlist.POST("/add", handlers.AddToWishlist(db))
		wishlist.DELETE("/:productId", handlers.RemoveFromWishlist(db))
	}

	addresses := r.Group("/api/addresses")
	addresses.Use(middleware.UserAuth(jwtSecret))
	{
		addresses.GET("", handlers.GetAddresses(db))
		addresses.POST("", handlers.CreateAddress(db))
		addresses.PUT("/:id", handlers.UpdateAddress(db))
		addresses.DELETE("/:id", handlers.DeleteAddress(db))
	}

	profile := r.Group("/api/profile")
	profile.Use(middleware.UserAuth(jwtSecret))
	{
		profile.GET("/recently-viewed", handlers.GetRecentlyViewed(db))
		profile.POST("/recently-viewed", handlers.AddRecentlyViewed(db))
	}

	orders := r.Group("/api/orders")
	orders.Use(middleware.UserAuth(jwtSecret))
	{
		orders.GET("", handlers.GetMyOrders(db))
		orders.GET("/:id", handlers.GetOrder(db))
	}

	pay := r.Group("/api/payments")
	pay.Use(middleware.UserAuth(jwtSecret))
	{
		pay.POST("/create", handlers.CreatePaymentIntent(gateway))
		pay.POST("/verify", handlers.VerifyPayment(db, gateway))
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(db, jwtSecret))
	{
		admin.GET("/dashboard", handlers.Dashboard(db))

		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db, uploads))
		admin.PUT("/products/:id", handlers.UpdateProduct(db, uploads))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.POST("/category", handlers.CreateCategory(db))
		admin.PUT("/category/:id", handlers.UpdateCategory(db))
		admin.DELETE("/category/:id", handlers.DeleteCategory(db))

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(db))

		admin.POST("/carousel", handlers.CreateCarouselSlide(db, uploads))
		admin.PUT("/carousel/reorder", handlers.ReorderCarousel(db))
		admin.PUT("/carousel/:id", handlers.UpdateCarouselSlide(db, uploads))
		admin.DELETE("/carousel/:id", handlers.DeleteCarouselSlide(db, uploads))
	}

	r.Run(":" + config.AppEnv.Port)
}
