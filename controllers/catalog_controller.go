package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pension-backend/models"
	"pension-backend/services"
	"pension-backend/utils"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: svc}
}

// GetCatalog handles GET /api/rooms: the room-type catalog annotated with
// per-type room counts. "Available" is operational status only, no dates.
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	entries, err := ctrl.Catalog.CatalogSummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": entries})
}

// ---- room types (staff) ----

func (ctrl *CatalogController) GetRoomTypes(c *gin.Context) {
	minCapacity, ok := queryInt(c, "minCapacity", 0)
	if !ok {
		return
	}
	types, err := ctrl.Catalog.ListRoomTypes(minCapacity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *CatalogController) GetRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rt, err := ctrl.Catalog.GetRoomType(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *CatalogController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: "+err.Error())
		return
	}
	if err := ctrl.Catalog.CreateRoomType(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ctrl *CatalogController) UpdateRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: "+err.Error())
		return
	}
	rt.ID = id
	if err := ctrl.Catalog.UpdateRoomType(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *CatalogController) DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Catalog.DeleteRoomType(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// ---- rooms (staff) ----

func (ctrl *CatalogController) GetRoomsByType(c *gin.Context) {
	roomTypeID, ok := queryInt(c, "roomTypeId", 0)
	if !ok {
		return
	}
	if roomTypeID <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidInput",
			"Zadejte roomTypeId")
		return
	}
	rooms, err := ctrl.Catalog.ListRoomsByType(uint(roomTypeID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *CatalogController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: "+err.Error())
		return
	}
	if err := ctrl.Catalog.CreateRoom(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *CatalogController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"Neplatný požadavek: "+err.Error())
		return
	}
	room.ID = id
	if err := ctrl.Catalog.UpdateRoom(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *CatalogController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Catalog.DeleteRoom(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidInput",
			"Neplatné ID záznamu")
		return 0, false
	}
	return uint(id), true
}
