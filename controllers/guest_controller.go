package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.Guests.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (ctrl *GuestController) GetGuest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	guest, err := ctrl.Guests.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
