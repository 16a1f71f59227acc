package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	"github.com/jandersonsiqueira/direto-na-porta/loyverse"
	"github.com/jandersonsiqueira/direto-na-porta/routes"
	"github.com/jandersonsiqueira/direto-na-porta/storage"
)

// defaultWhatsAppNumber is 55 + DDD + number.
const defaultWhatsAppNumber = "5585921963325"

func main() {
	log.Println("✅ Starting Direto na Porta...")

	// Load environment variables
	_ = godotenv.Load()

	// Durable cart storage
	store := initStore()
	repo := cart.NewRepository(store)

	// Loyverse client; a missing token is reported per request, not at boot
	token := os.Getenv("LOYVERSE_TOKEN")
	if token == "" {
		log.Println("⚠️ LOYVERSE_TOKEN not set; /api/catalog will return a configuration error")
	}
	client := loyverse.NewClient(os.Getenv("LOYVERSE_BASE_URL"), token)

	// Gin setup
	r := gin.Default()

	// CORS settings (the storefront UI is served from another origin)
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Cart-Key"},
		ExposeHeaders: []string{"Content-Length", "X-Cart-Key"},
		MaxAge:        12 * time.Hour,
	}))

	whatsAppNumber := os.Getenv("WHATSAPP_NUMBER")
	if whatsAppNumber == "" {
		whatsAppNumber = defaultWhatsAppNumber
	}

	// Setup routes
	routes.SetupRoutes(r, client, repo, whatsAppNumber)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the cart storage backend: in-memory when MEMORY_STORE is
// set (local development), otherwise postgres via GORM.
func initStore() storage.Store {
	if os.Getenv("MEMORY_STORE") == "true" {
		log.Println("⚠️ Using in-memory cart storage; carts are lost on restart")
		return storage.NewMemoryStore()
	}

	db := initDatabase()
	if err := db.AutoMigrate(&storage.KVRecord{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return storage.NewGormStore(db)
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
