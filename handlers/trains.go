package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"train-occupancy/models"
)

// AddTrain creates a new train
func (h *Handler) AddTrain(c *gin.Context) {
	var req models.AddTrainRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.trains.AddTrain(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Msg("Error adding train")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.AddTrainResponse{TrainID: id})
}

// GetAvailableSeats returns the free seats between the from and to stations
func (h *Handler) GetAvailableSeats(c *gin.Context) {
	id, ok := trainIDParam(c)
	if !ok {
		return
	}
	from, ok := stationQuery(c, "from")
	if !ok {
		return
	}
	to, ok := stationQuery(c, "to")
	if !ok {
		return
	}

	seats, err := h.trains.CalculateAvailableSeats(c.Request.Context(), models.SeatAvailabilityRequest{
		TrainID:     id,
		FromStation: from,
		ToStation:   to,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SeatAvailabilityResponse{TrainID: id, AvailableSeats: seats})
}

// GetPeopleBoarding returns the number of passengers boarding at a station
func (h *Handler) GetPeopleBoarding(c *gin.Context) {
	id, ok := trainIDParam(c)
	if !ok {
		return
	}
	station, ok := stationQuery(c, "station")
	if !ok {
		return
	}

	count, err := h.trains.CalculatePeopleBoardingAtStation(c.Request.Context(), id, station)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BoardingResponse{TrainID: id, Station: station, Count: count})
}

// GetOldestPassenger returns the age of the oldest passenger on a train
func (h *Handler) GetOldestPassenger(c *gin.Context) {
	id, ok := trainIDParam(c)
	if !ok {
		return
	}

	age, err := h.trains.CalculateOldestPassenger(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OldestPassengerResponse{TrainID: id, Age: age})
}

// GetTrainsInWindow lists trains passing a station between start and end (HH:MM)
func (h *Handler) GetTrainsInWindow(c *gin.Context) {
	station, err := models.ParseStation(c.Param("station"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := models.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := models.ParseTimeOfDay(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.trains.TrainsBetweenTimes(c.Request.Context(), station, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TrainsInWindowResponse{Station: station, TrainIDs: ids})
}
