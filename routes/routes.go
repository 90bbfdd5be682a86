package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pension-backend/controllers"
	"pension-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers into the gin engine.
func SetupRouter(
	ac *controllers.AvailabilityController,
	pc *controllers.PricingController,
	bc *controllers.BookingController,
	cc *controllers.CatalogController,
	rc *controllers.ReservationController,
	ic *controllers.InvoiceController,
	gc *controllers.GuestController,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public booking flow
		api.GET("/availability", ac.FindAvailability)
		api.POST("/calculate-price", pc.CalculatePrice)
		api.POST("/bookings", bc.CreateBooking)
		api.GET("/rooms", cc.GetCatalog)

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", cc.GetRoomTypes)
			roomTypes.GET("/:id", cc.GetRoomType)
			roomTypes.POST("", cc.CreateRoomType)
			roomTypes.PATCH("/:id", cc.UpdateRoomType)
			roomTypes.DELETE("/:id", cc.DeleteRoomType)
		}

		rooms := api.Group("/rooms-admin")
		{
			rooms.GET("", cc.GetRoomsByType)
			rooms.POST("", cc.CreateRoom)
			rooms.PATCH("/:id", cc.UpdateRoom)
			rooms.DELETE("/:id", cc.DeleteRoom)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/:id", rc.GetReservation)
			reservations.POST("/:id/checkin", rc.CheckIn)
			reservations.POST("/:id/checkout", rc.CheckOut)
			reservations.POST("/:id/cancel", rc.Cancel)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuest)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.GetInvoices)
			invoices.GET("/:id", ic.GetInvoice)
			invoices.POST("/:id/pay", ic.MarkPaid)
		}
	}

	return r
}
