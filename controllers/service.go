// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/services"
	"medspa-backend/utils"
)

// CreateService creates a new service for a medspa
func (a *API) CreateService(c *gin.Context) {
	var input services.ServiceDraft
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var service *models.Service
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		service, err = a.catalog.Create(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetService retrieves a specific service by ID
func (a *API) GetService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	service, err := a.catalog.Get(ctx, a.store.Reader(ctx), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetMedspaServices lists the services offered by one medspa
func (a *API) GetMedspaServices(c *gin.Context) {
	id, ok := parseID(c, "medspa")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	uow := a.store.Reader(ctx)
	if _, err := a.directory.GetMedspa(ctx, uow, id); err != nil {
		respondError(c, err)
		return
	}
	list, err := a.catalog.ListByMedspa(ctx, uow, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateService updates an existing service
func (a *API) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	var input services.ServicePatch
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var service *models.Service
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		service, err = a.catalog.Update(ctx, uow, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service and its appointment links
func (a *API) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var deleted bool
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		deleted, err = a.catalog.Delete(ctx, uow, id)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GetUpcomingAppointments lists scheduled future appointments that include the service
func (a *API) GetUpcomingAppointments(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	appointments, err := a.booking.Upcoming(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}
