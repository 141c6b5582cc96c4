package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.CORSAllowedOrigin != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.CORSAllowedOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"*"},
			AllowCredentials: true,
		}))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.UserStore)
	booksController := NewBooksController(cfg.BookStore)
	ordersController := NewOrdersController(cfg.OrderStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// User endpoints
	router.POST("/users/", usersController.CreateUser)
	router.GET("/users/:id", usersController.GetUser)
	router.DELETE("/users/:id", usersController.DeleteUser)

	// Book endpoints
	router.POST("/books/", booksController.CreateBook)
	router.GET("/books/", booksController.GetAllBooks)
	router.GET("/books/:id", booksController.GetBook)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	// Order endpoints
	router.POST("/orders/", ordersController.CreateOrder)
	router.GET("/orders/", ordersController.GetAllOrders)
	router.GET("/orders/:id", ordersController.GetOrder)
	router.DELETE("/orders/:id", ordersController.DeleteOrder)

	return router
}
