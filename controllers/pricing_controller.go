package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type PricingController struct {
	Pricing *services.PricingService
}

func NewPricingController(svc *services.PricingService) *PricingController {
	return &PricingController{Pricing: svc}
}

type calculatePriceRequest struct {
	RoomTypeID        uint   `json:"roomTypeId" binding:"required"`
	CheckInDate       string `json:"checkInDate" binding:"required"`
	CheckOutDate      string `json:"checkOutDate" binding:"required"`
	Adults            int    `json:"adults"`
	Children          int    `json:"children"`
	BreakfastIncluded bool   `json:"breakfastIncluded"`
}

// CalculatePrice handles POST /api/calculate-price.
func (ctrl *PricingController) CalculatePrice(c *gin.Context) {
	var req calculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: chybí povinná pole")
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange",
			"Zadejte datum příjezdu ve formátu RRRR-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange",
			"Zadejte datum odjezdu ve formátu RRRR-MM-DD")
		return
	}

	if req.Adults == 0 {
		req.Adults = 1
	}

	breakdown, err := ctrl.Pricing.Quote(req.RoomTypeID, checkIn, checkOut, req.Adults, req.Children, req.BreakfastIncluded)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "calculation": breakdown})
}
