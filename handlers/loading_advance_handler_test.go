package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktlogistics/models"
)

func seededRefRepo() *fakeReferenceRepo {
	ref := newFakeReferenceRepo()
	ref.vehicles["TN30AB1234"] = &models.Vehicle{
		ID: 1, VehicleNumber: "TN30AB1234", VehicleType: "Truck",
		VehicleBodyType: "Open body", OwnerName: "KT Logistics", OwnerType: models.OwnerOwn,
	}
	ref.products["Cement"] = true
	ref.pumps["HP Salem"] = &models.Pump{ID: 1, Name: "HP Salem", FuelRate: 95}
	ref.places["Salem|Cement"] = &models.Place{ID: 1, Name: "Salem", ProductName: "Cement"}
	ref.dealers[1] = map[string]bool{"Sri Traders": true}
	return ref
}

func validLoadingAdvanceBody() map[string]interface{} {
	return map[string]interface{}{
		"login_prefix":           "Salem",
		"vehicle_number":         "TN30AB1234",
		"vehicle_type":           "Truck",
		"vehicle_sub_type":       "12 Wheel",
		"vehicle_body_type":      "Open body",
		"owner_name":             "KT Logistics",
		"owner_type":             "Own",
		"driver_name":            "Murugan",
		"product_name":           "Cement",
		"invoice_date":           "2024-06-10",
		"driver_bata":            200,
		"unloading":              100,
		"pump_name":              "HP Salem",
		"fuel_litre":             100,
		"fuel_rate":              95,
		"driver_loading_advance": 7000,
		"invoices": []map[string]interface{}{
			{
				"invoice_number": "INV-1",
				"to_place":       "Salem",
				"dealer_name":    "Sri Traders",
				"quantity":       10,
				"kt_freight":     500,
			},
		},
	}
}

func postLoadingAdvance(t *testing.T, h *LoadingAdvanceHandler, body map[string]interface{}) (*httptest.ResponseRecorder, ApiResponse) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/loading-advances", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.CreateLoadingAdvance(rec, req)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateLoadingAdvanceSuccess(t *testing.T) {
	repo := newFakeLoadingAdvanceRepo()
	h := &LoadingAdvanceHandler{Repo: repo, RefRepo: seededRefRepo()}

	rec, resp := postLoadingAdvance(t, h, validLoadingAdvanceBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	require.Len(t, repo.created, 1)

	la := repo.created[0]
	assert.Equal(t, "SLM24250001", la.VoucherNumber)
	assert.InDelta(t, 5000, la.SumIFAs, 0.001)
	assert.InDelta(t, 4700, la.GrossAmount, 0.001)
	assert.InDelta(t, -7200, la.TripBalance, 0.001)
	assert.Equal(t, "Minus Seven Thousand Two Hundred Rupees Only", la.TripBalanceWords)
	assert.Equal(t, "INV-1", la.InvoiceNumber)
	require.NotNil(t, la.DriverName)
	assert.Equal(t, "Murugan", *la.DriverName)
}

func TestCreateLoadingAdvanceMissingFields(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	delete(body, "vehicle_number")
	delete(body, "driver_bata")

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "vehicle_number")
	assert.Contains(t, resp.Message, "driver_bata")
}

func TestCreateLoadingAdvanceNoInvoices(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["invoices"] = []map[string]interface{}{}

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "At least one invoice")
}

func TestCreateLoadingAdvanceUnknownVehicle(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["vehicle_number"] = "TN99ZZ0000"

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "TN99ZZ0000")
}

func TestCreateLoadingAdvanceInvalidOwnerType(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["owner_type"] = "Leased"

	rec, _ := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLoadingAdvanceDriverRequiredForOwn(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["driver_name"] = ""

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "Driver name is required")
}

func TestCreateLoadingAdvanceDriverOptionalForMarket(t *testing.T) {
	repo := newFakeLoadingAdvanceRepo()
	h := &LoadingAdvanceHandler{Repo: repo, RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["owner_type"] = "Market"
	body["driver_name"] = ""

	rec, _ := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].DriverName)
	assert.InDelta(t, 6, repo.created[0].CommissionPct, 0.001)
}

func TestCreateLoadingAdvanceDuplicateInvoiceNumbers(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	line := body["invoices"].([]map[string]interface{})[0]
	body["invoices"] = []map[string]interface{}{line, line}

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "Duplicate invoice number")
}

func TestCreateLoadingAdvanceUnknownDealer(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["invoices"].([]map[string]interface{})[0]["dealer_name"] = "Nobody"

	rec, resp := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "Nobody")
}

func TestCreateLoadingAdvancePumpRateFallback(t *testing.T) {
	repo := newFakeLoadingAdvanceRepo()
	h := &LoadingAdvanceHandler{Repo: repo, RefRepo: seededRefRepo()}

	body := validLoadingAdvanceBody()
	body["fuel_rate"] = 0

	rec, _ := postLoadingAdvance(t, h, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.InDelta(t, 95, repo.created[0].FuelRate, 0.001)
	assert.InDelta(t, 9500, repo.created[0].FuelAmount, 0.001)
}

func TestNextVoucherNumber(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	req := httptest.NewRequest(http.MethodGet, "/api/loading-advances/next-voucher?login_prefix=Salem", nil)
	rec := httptest.NewRecorder()
	h.NextVoucherNumber(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Regexp(t, `^SLM\d{8}$`, data["voucher_number"])
}

func TestNextVoucherNumberUsesDefaultBranch(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), DefaultBranch: "Coimbatore"}

	req := httptest.NewRequest(http.MethodGet, "/api/loading-advances/next-voucher", nil)
	rec := httptest.NewRecorder()
	h.NextVoucherNumber(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Regexp(t, `^CBE\d{8}$`, data["voucher_number"])
}

func TestNextVoucherNumberRequiresPrefix(t *testing.T) {
	h := &LoadingAdvanceHandler{Repo: newFakeLoadingAdvanceRepo(), RefRepo: seededRefRepo()}

	req := httptest.NewRequest(http.MethodGet, "/api/loading-advances/next-voucher", nil)
	rec := httptest.NewRecorder()
	h.NextVoucherNumber(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
