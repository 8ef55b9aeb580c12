package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/balogunkehinde13/social-media-api/internal/handlers"
	"github.com/balogunkehinde13/social-media-api/internal/middleware"
	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/repositories"
	"github.com/balogunkehinde13/social-media-api/internal/services"
	"github.com/balogunkehinde13/social-media-api/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware and the error body shape
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = httpErrorHandler
	log.Println("Global middleware configured.")
}

// httpErrorHandler renders every error as {"detail": "..."} JSON.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	detail := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		} else {
			detail = fmt.Sprintf("%v", he.Message)
		}
	}

	if c.Response().Committed {
		return
	}
	if jsonErr := c.JSON(code, echo.Map{"detail": detail}); jsonErr != nil {
		log.Printf("Failed to write error response: %v", jsonErr)
	}
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Initialize Services ---
	followService := services.NewFollowService(followRepo, userRepo, notificationRepo)
	likeService := services.NewLikeService(likeRepo, postRepo, notificationRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, notificationRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	feedService := services.NewFeedService(followRepo, postRepo, userRepo, likeRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)

	authed := middleware.JWTAuth(cfg.JWTSecret)

	// --- Unprotected account routes ---
	accounts := e.Group("/accounts")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(accounts)
	log.Println("Auth routes configured.")

	// --- Protected account routes ---
	accountsAuth := e.Group("/accounts", authed)

	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterProfileRoutes(accountsAuth)
	log.Println("User profile routes configured.")

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(accountsAuth)
	log.Println("Follow routes configured.")

	// --- Post routes ---
	posts := e.Group("/posts", authed)

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(posts)
	log.Println("Feed routes configured.")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(posts)
	log.Println("Post routes configured.")

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(posts)
	log.Println("Like routes configured.")

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterPostCommentRoutes(posts)

	comments := e.Group("/comments", authed)
	commentHandler.RegisterCommentRoutes(comments)
	log.Println("Comment routes configured.")

	// --- Notification routes ---
	notifications := e.Group("/notifications", authed)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(notifications)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
