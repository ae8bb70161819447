package routes

import (
	"Recipehub-Backend/internal/api/handlers"
	"Recipehub-Backend/internal/middleware"
	"Recipehub-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	DataHandler     handlers.DataHandler
	PantryHandler   handlers.PantryHandler
	ShoppingHandler handlers.ShoppingHandler
	ContactHandler  handlers.ContactHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Data()
	c.Pantry()
	c.ShoppingList()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// "my-favorites" is registered before ":id" so it is not captured
	// as a recipe id.
	recipes.Get("/my-favorites", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetFavoriteRecipes)

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/rate", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.RateRecipe)
	recipes.Post("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ToggleFavorite)
	recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Data() {
	data := c.App.Group("/api/v1/data")
	data.Get("/filters", c.DataHandler.GetFilterData)
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	pantry.Post("", c.PantryHandler.AddItem)
	pantry.Get("", c.PantryHandler.GetItems)
	pantry.Put("/:id", c.PantryHandler.UpdateItem)
	pantry.Delete("/:id", c.PantryHandler.DeleteItem)
}

func (c *Config) ShoppingList() {
	shopping := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Post("", c.ShoppingHandler.AddItem)
	shopping.Get("", c.ShoppingHandler.GetItems)
	shopping.Put("/:id", c.ShoppingHandler.UpdateItem)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteItem)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/api/v1/contact", c.ContactHandler.SendMessage)
}
