package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"train-occupancy/database"
	"train-occupancy/models"
	"train-occupancy/services"
)

// Handler exposes the train service over HTTP
type Handler struct {
	trains *services.TrainService
}

func NewHandler(trains *services.TrainService) *Handler {
	return &Handler{trains: trains}
}

// Register mounts the API routes on the router
func (h *Handler) Register(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.POST("/trains", h.AddTrain)
		api.GET("/trains/:id/seats", h.GetAvailableSeats)
		api.GET("/trains/:id/boarding", h.GetPeopleBoarding)
		api.GET("/trains/:id/oldest", h.GetOldestPassenger)
		api.GET("/stations/:station/trains", h.GetTrainsInWindow)
	}
}

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrTrainNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
	case errors.Is(err, services.ErrNotOnRoute):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrNotOnRoute.Error()})
	case errors.Is(err, services.ErrInvalidTrain),
		errors.Is(err, models.ErrUnknownStation),
		errors.Is(err, models.ErrEmptyRoute):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func trainIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid train ID"})
		return 0, false
	}
	return id, true
}

func stationQuery(c *gin.Context, key string) (models.Station, bool) {
	st, err := models.ParseStation(c.Query(key))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return st, true
}
