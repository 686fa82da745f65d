package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktlogistics/models"
)

func TestCreateRateCardAppliesKTFreightDefault(t *testing.T) {
	repo := newFakeRateCardRepo()
	h := &RateCardHandler{Repo: repo}

	rec, _ := postJSON(t, h.CreateRateCard, "/api/rate-cards", map[string]interface{}{
		"vehicle_type":      "Truck",
		"vehicle_sub_type":  "12 Wheel",
		"vehicle_body_type": "Open body",
		"rcl_freight":       500,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.cards, 1)
	assert.Equal(t, 499.0, repo.cards[0].KTFreight)
}

func TestCreateRateCardRequiresFreight(t *testing.T) {
	h := &RateCardHandler{Repo: newFakeRateCardRepo()}

	rec, resp := postJSON(t, h.CreateRateCard, "/api/rate-cards", map[string]interface{}{
		"vehicle_type":      "Truck",
		"vehicle_sub_type":  "12 Wheel",
		"vehicle_body_type": "Open body",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "rcl_freight")
}

func TestLookupRateCard(t *testing.T) {
	repo := newFakeRateCardRepo()
	require.NoError(t, repo.Create(&models.RateCard{
		VehicleType:     "Truck",
		VehicleSubType:  "12 Wheel",
		VehicleBodyType: "Open body",
		RCLFreight:      500,
	}))

	h := &RateCardHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet,
		"/api/rate-cards/lookup?vehicle_type=Truck&vehicle_sub_type=12+Wheel&vehicle_body_type=Open+body", nil)
	rec := httptest.NewRecorder()
	h.LookupRateCard(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet,
		"/api/rate-cards/lookup?vehicle_type=Van&vehicle_sub_type=Mini&vehicle_body_type=Closed", nil)
	rec = httptest.NewRecorder()
	h.LookupRateCard(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/rate-cards/lookup?vehicle_type=Truck", nil)
	rec = httptest.NewRecorder()
	h.LookupRateCard(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
