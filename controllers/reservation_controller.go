package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: svc}
}

func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.Reservations.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	ctrl.transition(c, ctrl.Reservations.CheckIn)
}

func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	ctrl.transition(c, ctrl.Reservations.CheckOut)
}

func (ctrl *ReservationController) Cancel(c *gin.Context) {
	ctrl.transition(c, ctrl.Reservations.Cancel)
}

func (ctrl *ReservationController) transition(c *gin.Context, fn func(uint) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := fn(id); err != nil {
		respondServiceError(c, err)
		return
	}
	reservation, err := ctrl.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}
