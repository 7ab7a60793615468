package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentLifecycle(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)
	botox := create(t, r, "/services", ids.service(ids.medspa, "Botox forehead", 100, 30))
	filler := create(t, r, "/services", ids.service(ids.medspa, "Lip filler", 50.5, 45))

	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"medspa_id":   ids.medspa,
		"start_time":  "2031-03-04T15:30:00Z",
		"status":      "completed",
		"service_ids": []float64{botox, filler},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "scheduled", body["status"])
	assert.Equal(t, float64(75), body["total_duration"])
	assert.Equal(t, 150.5, body["total_price"])
	path := fmt.Sprintf("/appointments/%d", int64(body["id"].(float64)))

	w = do(t, r, http.MethodPut, path, gin.H{"status": "scheduled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "status")

	w = do(t, r, http.MethodPut, path, gin.H{"status": "completed", "service_ids": []float64{filler}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, float64(45), body["total_duration"])

	w = do(t, r, http.MethodGet, "/appointments?status=completed&start_date=2031-03-04", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":50.5`)

	w = do(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAppointmentAcrossMedspas(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)
	own := create(t, r, "/services", ids.service(ids.medspa, "Botox forehead", 100, 30))
	foreign := create(t, r, "/services", ids.service(ids.otherMedspa, "Botox brow", 90, 20))

	w := do(t, r, http.MethodPost, "/appointments", gin.H{
		"medspa_id":   ids.medspa,
		"start_time":  "2031-03-04T15:30:00Z",
		"service_ids": []float64{own, foreign},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAppointmentRequestErrors(t *testing.T) {
	r := newTestRouter(t)
	ids := seedCatalog(t, r)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"bad date filter", http.MethodGet, "/appointments?start_date=03/04/2031", nil, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/appointments/abc", nil, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/appointments/999", nil, http.StatusNotFound},
		{"missing start_time", http.MethodPost, "/appointments", gin.H{"medspa_id": ids.medspa}, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/appointments", "{", http.StatusBadRequest},
		{"unknown medspa", http.MethodPost, "/appointments", gin.H{"medspa_id": 999, "start_time": "2031-03-04T15:30:00Z"}, http.StatusNotFound},
		{"unknown service", http.MethodPost, "/appointments", gin.H{"medspa_id": ids.medspa, "start_time": "2031-03-04T15:30:00Z", "service_ids": []int{999}}, http.StatusNotFound},
		{"update unknown", http.MethodPut, "/appointments/999", gin.H{"status": "canceled"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	w := do(t, r, http.MethodGet, "/appointments?start_date=03/04/2031", nil)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", decode(t, w)["error"])
}
