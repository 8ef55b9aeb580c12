package main

import (
	"context"
	"log"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/balogunkehinde13/social-media-api/internal/router"
	"github.com/balogunkehinde13/social-media-api/pkg/config"
	"github.com/balogunkehinde13/social-media-api/pkg/firebase"
	"github.com/balogunkehinde13/social-media-api/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Firebase login is optional; the service runs without it.
	var firebaseAuthClient *firebaseAuth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, Firebase login disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseAuthClient, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
