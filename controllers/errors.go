package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

// respondServiceError maps service error kinds to HTTP statuses and the
// guest-facing Czech messages. The code stays stable for clients.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange",
			"Neplatné datum pobytu: zkontrolujte termín příjezdu a odjezdu")
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidInput",
			"Neplatné vstupní údaje: "+err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound",
			"Požadovaný záznam nebyl nalezen")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "error.roomUnavailable",
			"Pro zvolený termín již není volný žádný pokoj")
	case errors.Is(err, services.ErrStorageUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "error.storageUnavailable",
			"Služba je dočasně nedostupná, zkuste to prosím znovu")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal",
			"Interní chyba serveru")
	}
}
