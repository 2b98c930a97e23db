package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/cache"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/config"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/handler"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/holiday"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/scheduler"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/store"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}
}

func main() {
	cfg := config.GetServerConfig()

	// Redis is optional, the catalog falls back to its in-memory cache.
	if err := cache.InitRedis(); err != nil {
		log.Printf("[CACHE] redis unavailable, using in-memory cache: %v", err)
	} else {
		catalog.SetCacheProvider(cache.Provider{})
	}

	if err := holiday.LoadCustomClosures(os.Getenv("CLOSURES_FILE")); err != nil {
		log.Printf("[HOLIDAY] %v", err)
	}

	db, err := store.Open(os.Getenv("SQLITE_PATH"))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()
	handler.InitStore(db)

	scheduler.Start()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handler.GetHealth)
		api.GET("/vehicles", handler.GetVehicles)

		api.POST("/quote", handler.PostQuote)
		api.POST("/recommendations", handler.PostRecommendations)
		api.POST("/predict-resale", handler.PostPredictResale)

		api.POST("/chat", handler.PostChat)
		api.POST("/text-to-speech", handler.PostTextToSpeech)

		api.GET("/discussion/posts", handler.GetPosts)
		api.POST("/discussion/posts", handler.PostPost)
		api.POST("/discussion/posts/:id/like", handler.PostLike)

		api.GET("/appointments", handler.GetAppointments)
		api.POST("/appointments", handler.PostAppointment)

		api.GET("/rewards/:member", handler.GetRewards)
		api.POST("/rewards/earn", handler.PostEarn)
		api.POST("/rewards/redeem", handler.PostRedeem)
	}

	log.Printf("server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
