// controllers/medspa.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/services"
	"medspa-backend/utils"
)

func (a *API) GetMedspas(c *gin.Context) {
	ctx := c.Request.Context()
	medspas, err := a.directory.ListMedspas(ctx, a.store.Reader(ctx))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medspas)
}

func (a *API) GetMedspa(c *gin.Context) {
	id, ok := parseID(c, "medspa")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	medspa, err := a.directory.GetMedspa(ctx, a.store.Reader(ctx), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medspa)
}

func (a *API) CreateMedspa(c *gin.Context) {
	var input services.MedspaInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var medspa *models.Medspa
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		medspa, err = a.directory.CreateMedspa(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, medspa)
}

func (a *API) UpdateMedspa(c *gin.Context) {
	id, ok := parseID(c, "medspa")
	if !ok {
		return
	}

	var input services.MedspaPatch
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var medspa *models.Medspa
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		medspa, err = a.directory.UpdateMedspa(ctx, uow, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medspa)
}

// DeleteMedspa removes the medspa with its services and appointments
func (a *API) DeleteMedspa(c *gin.Context) {
	id, ok := parseID(c, "medspa")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var deleted bool
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		deleted, err = a.directory.DeleteMedspa(ctx, uow, id)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Medspa not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medspa deleted successfully"})
}
