// controllers/catalog.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/services"
	"medspa-backend/utils"
)

func (a *API) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()
	categories, err := a.directory.ListCategories(ctx, a.store.Reader(ctx))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (a *API) CreateCategory(c *gin.Context) {
	var input services.CategoryInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var category *models.ServiceCategory
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		category, err = a.directory.CreateCategory(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetTypes lists service types, optionally narrowed with ?category_id=
func (a *API) GetTypes(c *gin.Context) {
	var categoryID int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		categoryID = id
	}

	ctx := c.Request.Context()
	types, err := a.directory.ListTypes(ctx, a.store.Reader(ctx), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (a *API) CreateType(c *gin.Context) {
	var input services.TypeInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var serviceType *models.ServiceType
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		serviceType, err = a.directory.CreateType(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceType)
}

func (a *API) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	products, err := a.directory.ListProducts(ctx, a.store.Reader(ctx))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *API) CreateProduct(c *gin.Context) {
	var input services.ProductInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var product *models.ServiceProduct
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		product, err = a.directory.CreateProduct(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (a *API) GetSuppliers(c *gin.Context) {
	ctx := c.Request.Context()
	suppliers, err := a.directory.ListSuppliers(ctx, a.store.Reader(ctx))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (a *API) CreateSupplier(c *gin.Context) {
	var input services.SupplierInput
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var supplier *models.Supplier
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		supplier, err = a.directory.CreateSupplier(ctx, uow, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// DeleteSupplier refuses while products still reference the supplier
func (a *API) DeleteSupplier(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var deleted bool
	err := a.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		deleted, err = a.directory.DeleteSupplier(ctx, uow, id)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
