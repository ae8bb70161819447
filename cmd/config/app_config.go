package config

import (
	"Recipehub-Backend/internal/api/handlers"
	"Recipehub-Backend/internal/api/routes"
	"Recipehub-Backend/internal/middleware"
	"Recipehub-Backend/internal/utils"
	"Recipehub-Backend/internal/utils/storage"
	"Recipehub-Backend/pkg/ingredient"
	"Recipehub-Backend/pkg/jwt"
	"Recipehub-Backend/pkg/pantry"
	"Recipehub-Backend/pkg/recipe"
	"Recipehub-Backend/pkg/shopping"
	"Recipehub-Backend/pkg/taxonomy"
	"Recipehub-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	junctionManager := taxonomy.NewJunctionManager()
	ingredientRepository := ingredient.NewIngredientRepository()
	taxonomyRepository := taxonomy.NewTaxonomyRepository(db)
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db, junctionManager, ingredientRepository)
	pantryRepository := pantry.NewPantryRepository(db, ingredientRepository)
	shoppingRepository := shopping.NewShoppingRepository(db, ingredientRepository)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	taxonomyService := taxonomy.NewTaxonomyService(taxonomyRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	pantryService := pantry.NewPantryService(pantryRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	dataHandler := handlers.NewDataHandler(taxonomyService)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	contactHandler := handlers.NewContactHandler(validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		DataHandler:     dataHandler,
		PantryHandler:   pantryHandler,
		ShoppingHandler: shoppingHandler,
		ContactHandler:  contactHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
