package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEndpoints(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)
	id := create(t, r, "/services", ids.service(ids.medspa, "Botox forehead", 100, 30))
	path := fmt.Sprintf("/services/%d", int64(id))

	w := do(t, r, http.MethodPut, path, gin.H{"price": 120.25})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, 120.25, body["price"])
	assert.Equal(t, "Botox forehead", body["name"])

	w = do(t, r, http.MethodPut, path, gin.H{"category_id": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "type/category mismatch", decode(t, w)["error"])

	w = do(t, r, http.MethodGet, fmt.Sprintf("/medspas/%d/services", int64(ids.medspa)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Botox forehead")

	w = do(t, r, http.MethodGet, path+"/upcoming-appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateServiceValidation(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)

	w := do(t, r, http.MethodPost, "/services", gin.H{"name": "Incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "missing required field")

	bad := ids.service(ids.medspa, "Wrong chain", 10, 10)
	bad["type_id"] = 999
	w = do(t, r, http.MethodPost, "/services", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/medspas/%d/services", 999), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSupplierDeleteIsProtected(t *testing.T) {
	r := newTestRouter(t)
	seedCatalog(t, r)

	w := do(t, r, http.MethodDelete, "/service-product-suppliers/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "1 products")

	idle := create(t, r, "/service-product-suppliers", gin.H{"name": "Galderma"})
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/service-product-suppliers/%d", int64(idle)), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/service-product-suppliers/%d", int64(idle)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMedspaEndpoints(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)
	create(t, r, "/services", ids.service(ids.medspa, "Botox forehead", 100, 30))

	w := do(t, r, http.MethodPost, "/medspas", gin.H{"name": "Nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path := fmt.Sprintf("/medspas/%d", int64(ids.medspa))
	w = do(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
