package router

import (
	"log"

	"github.com/chabeb/social-network/backend/internal/handlers"
	"github.com/chabeb/social-network/backend/internal/middleware"
	"github.com/chabeb/social-network/backend/internal/models"
	"github.com/chabeb/social-network/backend/internal/repositories"
	"github.com/chabeb/social-network/backend/pkg/profanity"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, mongoDatabase string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mongoDB := mgClient.Database(mongoDatabase)
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	messageRepo := repositories.NewMongoMessageRepository(mongoDB)

	filter := profanity.NewFilter()

	auth := middleware.JWTAuthMiddleware()
	optionalAuth := middleware.OptionalJWTAuthMiddleware()

	// --- User routes (registration/login public, profile update protected) ---
	users := e.Group("/api/users")
	authHandler := handlers.NewAuthHandler(userRepo, filter)
	authHandler.RegisterAuthRoutes(users)
	userHandler := handlers.NewUserHandler(userRepo, filter)
	userHandler.RegisterUserRoutes(users, auth)
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(users, auth)
	log.Println("User routes configured.")

	// --- Post routes (reads allow optional auth for personalization) ---
	posts := e.Group("/api/posts")
	postHandler := handlers.NewPostHandler(postRepo, followRepo, likeRepo, commentRepo, filter)
	postHandler.RegisterPostRoutes(posts, auth, optionalAuth)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(posts, auth)
	log.Println("Post routes configured.")

	// --- Comment routes ---
	comments := e.Group("/api/comments")
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, filter)
	commentHandler.RegisterCommentRoutes(comments, auth)
	log.Println("Comment routes configured.")

	// --- Message routes (all protected) ---
	messages := e.Group("/api/messages", auth)
	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, filter)
	messageHandler.RegisterMessageRoutes(messages)
	log.Println("Message routes configured.")

	log.Println("All routes configured.")
}
