package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: svc}
}

// availabilityEntryJSON is the wire shape of one free room type.
type availabilityEntryJSON struct {
	RoomTypeID     uint        `json:"room_type_id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	BasePrice      interface{} `json:"base_price"`
	MaxOccupancy   int         `json:"max_occupancy"`
	Amenities      interface{} `json:"amenities,omitempty"`
	Available      bool        `json:"available"`
	AvailableRooms int         `json:"availableRooms"`
	TotalRooms     int         `json:"totalRooms"`
}

// FindAvailability handles GET /api/availability.
func (ctrl *AvailabilityController) FindAvailability(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange",
			"Zadejte datum příjezdu ve formátu RRRR-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange",
			"Zadejte datum odjezdu ve formátu RRRR-MM-DD")
		return
	}

	adults, ok := queryInt(c, "adults", 1)
	if !ok {
		return
	}
	children, ok := queryInt(c, "children", 0)
	if !ok {
		return
	}

	entries, err := ctrl.Availability.FindAvailableRoomTypes(checkIn, checkOut, adults, children)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]availabilityEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, availabilityEntryJSON{
			RoomTypeID:     e.RoomType.ID,
			Name:           e.RoomType.Name,
			Description:    e.RoomType.Description,
			BasePrice:      e.RoomType.BasePrice,
			MaxOccupancy:   e.RoomType.MaxOccupancy,
			Amenities:      e.RoomType.Amenities,
			Available:      true,
			AvailableRooms: e.AvailableRooms,
			TotalRooms:     e.TotalRooms,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "availability": out})
}

// queryInt parses an optional integer query parameter. A malformed value is
// answered with 400 right away, never silently replaced by the default.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidInput",
			"Parametr "+key+" musí být celé číslo")
		return 0, false
	}
	return n, true
}
