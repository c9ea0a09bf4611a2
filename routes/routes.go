package routes

import (
	"net/http"

	"github.com/UAShoshi/car-doctor-server/controllers"
	"github.com/UAShoshi/car-doctor-server/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every endpoint onto the engine, passing in the
// controllers and the auth middleware guarding the protected group.
func RegisterRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	services *controllers.ServiceController,
	checkouts *controllers.CheckoutController,
	requireAuth gin.HandlerFunc,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Car doctor is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/jwt", middleware.TokenIssueRateLimit(), auth.IssueToken)
	r.POST("/logout", auth.Logout)

	r.GET("/services", services.ListServices)
	r.GET("/services/:id", services.GetServiceByID)

	r.GET("/checkouts", requireAuth, checkouts.ListCheckouts)
	r.POST("/checkouts", checkouts.CreateCheckout)
	r.PATCH("/checkouts/:id", checkouts.UpdateCheckoutStatus)
	r.DELETE("/checkouts/:id", checkouts.DeleteCheckout)
}
