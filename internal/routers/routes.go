package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tranhart-io/api/internal/container"
	"tranhart-io/api/internal/middleware"
	"tranhart-io/api/pkg/controllers"
)

// InitRoute creates the Gin router with the service layer architecture.
func InitRoute() *gin.Engine {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"error":   "method not allowed",
		})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
		})
	})

	api := router.Group("/api", middleware.APIRateLimiter())
	{
		api.GET("/ping", controllers.Ping)

		setupAuthRoutes(api, serviceContainer)
		categoryRoutes(api, serviceContainer)
		productRoutes(api, serviceContainer)
		menuRoutes(api, serviceContainer)
		configRoutes(api, serviceContainer)
		dashboardRoutes(api, serviceContainer)
		mediaRoutes(api, serviceContainer)
	}

	return router
}

// setupAuthRoutes configures public authentication endpoints. Login gets
// its own stricter rate limit.
func setupAuthRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	login := api.Group("/login", middleware.LoginRateLimiter())
	login.POST("", sc.UserController.Login)
	login.POST("/google", sc.UserController.GoogleLogin)

	api.DELETE("/logout", sc.UserController.Logout)
}

func categoryRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	category := api.Group("/categories")

	category.GET("", sc.CategoryController.GetCategories)
	category.GET("/:id", sc.CategoryController.GetCategory)
	category.GET("/slug/:slug", sc.CategoryController.GetCategoryBySlug)

	secured := category.Group("").Use(middleware.AdminOnly(sc.UserService))
	secured.POST("", sc.CategoryController.CreateCategory)
	secured.PUT("/:id", sc.CategoryController.UpdateCategory)
	secured.DELETE("/:id", sc.CategoryController.DeleteCategory)
}

func productRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	product := api.Group("/products")

	product.GET("", sc.ProductController.GetProducts)
	product.GET("/:id", sc.ProductController.GetProduct)

	secured := product.Group("").Use(middleware.AdminOnly(sc.UserService))
	secured.POST("", sc.ProductController.CreateProduct)
	secured.PUT("/:id", sc.ProductController.UpdateProduct)
	secured.DELETE("/:id", sc.ProductController.DeleteProduct)
}

func menuRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	menu := api.Group("/menus")

	menu.GET("", sc.MenuController.GetMenus)
	menu.GET("/children", sc.MenuController.GetMenuTree)
	menu.GET("/:id", sc.MenuController.GetMenu)

	secured := menu.Group("").Use(middleware.AdminOnly(sc.UserService))
	secured.POST("", sc.MenuController.CreateMenu)
	secured.PUT("/:id", sc.MenuController.UpdateMenu)
	secured.DELETE("/:id", sc.MenuController.DeleteMenu)
}

func configRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	config := api.Group("/config")

	config.GET("", sc.ConfigController.GetConfig)

	secured := config.Group("").Use(middleware.AdminOnly(sc.UserService))
	secured.POST("", sc.ConfigController.CreateConfig)
	secured.PUT("", sc.ConfigController.UpdateConfig)
	secured.DELETE("", sc.ConfigController.DeleteConfig)
}

func dashboardRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	secured := api.Group("/dashboard").Use(middleware.AdminOnly(sc.UserService))
	secured.GET("", sc.DashboardController.GetStats)
}

func mediaRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	secured := api.Group("/media").Use(middleware.AdminOnly(sc.UserService))
	secured.POST("", sc.MediaController.Upload)
	secured.DELETE("/:publicId", sc.MediaController.Destroy)
}
