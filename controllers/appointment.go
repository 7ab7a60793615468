// controllers/appointment.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medspa-backend/services"
	"medspa-backend/utils"
)

// GetAppointments lists appointments, optionally filtered by status and start date
func (a *API) GetAppointments(c *gin.Context) {
	query := services.AppointmentQuery{Status: c.Query("status")}
	if raw := c.Query("start_date"); raw != "" {
		day, err := utils.ParseDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query.StartDate = &day
	}

	appointments, err := a.booking.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves an appointment with its totals
func (a *API) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	appointment, err := a.booking.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment books a new appointment
func (a *API) CreateAppointment(c *gin.Context) {
	var input services.AppointmentRequest
	if !bindJSON(c, &input) {
		return
	}

	appointment, err := a.booking.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment changes status, start time or the booked services
func (a *API) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	var input services.AppointmentPatch
	if !bindJSON(c, &input) {
		return
	}

	appointment, err := a.booking.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (a *API) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	deleted, err := a.booking.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
