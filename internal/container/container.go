package container

import (
	"tranhart-io/api/pkg/controllers"
	"tranhart-io/api/pkg/services"
)

type ServiceContainer struct {
	CategoryService  *services.CategoryService
	ProductService   *services.ProductService
	MenuService      *services.MenuService
	ConfigService    *services.ConfigService
	UserService      services.UserService
	DashboardService *services.DashboardService

	CategoryController  *controllers.CategoryController
	ProductController   *controllers.ProductController
	MenuController      *controllers.MenuController
	ConfigController    *controllers.ConfigController
	UserController      *controllers.UserController
	DashboardController *controllers.DashboardController
	MediaController     *controllers.MediaController
}

func NewServiceContainer() *ServiceContainer {
	categoryService := services.NewCategoryService()
	productService := services.NewProductService()
	menuService := services.NewMenuService()
	configService := services.NewConfigService()
	userService := services.NewUserService()
	dashboardService := services.NewDashboardService()

	categoryController := controllers.InitCategoryController(categoryService, productService)
	productController := controllers.InitProductController(productService)
	menuController := controllers.InitMenuController(menuService)
	configController := controllers.InitConfigController(configService)
	userController := controllers.InitUserController(userService)
	dashboardController := controllers.InitDashboardController(dashboardService)
	mediaController := controllers.InitMediaController()

	return &ServiceContainer{
		CategoryService:  categoryService,
		ProductService:   productService,
		MenuService:      menuService,
		ConfigService:    configService,
		UserService:      userService,
		DashboardService: dashboardService,

		CategoryController:  categoryController,
		ProductController:   productController,
		MenuController:      menuController,
		ConfigController:    configController,
		UserController:      userController,
		DashboardController: dashboardController,
		MediaController:     mediaController,
	}
}
