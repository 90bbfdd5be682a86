package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type BookingController struct {
	Booking *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Booking: svc}
}

type guestInfoPayload struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

type createBookingRequest struct {
	GuestInfo         guestInfoPayload `json:"guestInfo" binding:"required"`
	RoomTypeID        uint             `json:"roomTypeId" binding:"required"`
	CheckInDate       string           `json:"checkInDate" binding:"required"`
	CheckOutDate      string           `json:"checkOutDate" binding:"required"`
	Adults            int              `json:"adults"`
	Children          int              `json:"children"`
	BreakfastIncluded bool             `json:"breakfastIncluded"`
	SpecialRequests   string           `json:"specialRequests"`
}

// CreateBooking handles POST /api/bookings. The total is always computed
// server-side; nothing price-shaped is accepted from the client.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: chybí povinná pole rezervace")
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

	result, err := ctrl.Booking.CreateBooking(services.CreateBookingInput{
		Guest: services.GuestInfo{
			FirstName:   req.GuestInfo.FirstName,
			LastName:    req.GuestInfo.LastName,
			Email:       req.GuestInfo.Email,
			Phone:       req.GuestInfo.Phone,
			Nationality: req.GuestInfo.Nationality,
		},
		RoomTypeID:        req.RoomTypeID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Adults:            req.Adults,
		Children:          req.Children,
		BreakfastIncluded: req.BreakfastIncluded,
		Notes:             req.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"reservationId": result.ReservationID,
		"roomNumber":    result.RoomNumber,
		"invoiceNumber": result.InvoiceNumber,
		"totalAmount":   result.TotalAmount,
	})
}
