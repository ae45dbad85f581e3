package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imalriyad/bistro-boss-server/configs"
	"github.com/imalriyad/bistro-boss-server/controllers"
	"github.com/imalriyad/bistro-boss-server/middlewares"
	"github.com/imalriyad/bistro-boss-server/repository"
	"github.com/imalriyad/bistro-boss-server/services"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro Boss Server is running ...")
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	userSvc := services.NewUserService(userRepo)
	cartSvc := services.NewCartService(cartRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, cartRepo,
		services.NewStripeGateway(cfg.PaymentSecret))

	// Controllers
	secret := []byte(cfg.JWTSecret)
	authCtrl := controllers.NewAuthController(secret, cfg.JWTTTL, userSvc)
	userCtrl := controllers.NewUserController(userSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	foodCtrl := controllers.NewFoodController(foodRepo)
	reviewCtrl := controllers.NewReviewController(reviewRepo)
	payCtrl := controllers.NewPaymentController(paymentSvc)

	auth := middlewares.AuthMiddleware(secret)
	admin := middlewares.AdminMiddleware(userRepo)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/jwt", authCtrl.IssueToken)
		v1.GET("/getUserRole/:email", auth, authCtrl.UserRole)

		v1.POST("/create-user", userCtrl.Create)
		v1.GET("/users", auth, admin, userCtrl.List)
		v1.PATCH("/make-admin/:id", auth, admin, userCtrl.MakeAdmin)
		v1.DELETE("/user/:id", auth, admin, userCtrl.Delete)

		v1.POST("/add-to-cart", cartCtrl.Add)
		v1.GET("/get-cart", cartCtrl.List)
		v1.DELETE("/delete-from-cart/:id", cartCtrl.Remove)

		v1.POST("/add-item", auth, admin, foodCtrl.Add)
		v1.GET("/get-all-foods", foodCtrl.List)
		v1.DELETE("/delete-from-foods/:id", foodCtrl.Remove)

		v1.GET("/get-reviews", reviewCtrl.List)

		v1.POST("/create-payment-intent", payCtrl.CreateIntent)
		v1.POST("/save-payment-details", payCtrl.Save)
	}
}
