package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"matrimony_server/config"
	"matrimony_server/db"
	"matrimony_server/middleware"
	"matrimony_server/routes"
	"matrimony_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log.Println("Connecting to database...")
	conn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connected.")

	// Initialize services
	userService := &services.UserService{DB: conn}
	searchService := &services.SearchService{DB: conn}
	interestService := &services.InterestService{DB: conn}
	chatService := &services.ChatService{DB: conn}
	tokenService := &services.TokenService{Secret: []byte(cfg.JWTSecret), TTL: cfg.TokenTTL}

	var photoStore services.PhotoStore
	if cfg.PhotoStorage == "s3" {
		photoStore, err = services.NewS3PhotoStore(context.Background(), cfg.AWSRegion, cfg.S3Bucket)
	} else {
		photoStore, err = services.NewDiskPhotoStore(cfg.UploadDir)
	}
	if err != nil {
		log.Fatalf("Photo store init failed: %v", err)
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Matrimony")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	authenticate := middleware.Authenticate(tokenService)
	routes.RegisterAuthRoutes(r, userService, tokenService, authenticate)
	routes.RegisterProfileRoutes(r, userService, photoStore, authenticate)
	routes.RegisterSearchRoutes(r, searchService, authenticate)
	routes.RegisterInterestRoutes(r, interestService, authenticate)
	routes.RegisterChatRoutes(r, chatService, authenticate)

	// Uploaded photos are served statically; User.Photo holds the relative path.
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir("uploads"))))

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	handler := middleware.RequestLogger(corsHandler)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
