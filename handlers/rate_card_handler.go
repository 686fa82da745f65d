package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"ktlogistics/models"
	"ktlogistics/repository"
)

type RateCardHandler struct {
	Repo repository.RateCardRepository
}

func (h *RateCardHandler) CreateRateCard(w http.ResponseWriter, r *http.Request) {
	var rc models.RateCard
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(rc.VehicleType) == "" || strings.TrimSpace(rc.VehicleSubType) == "" ||
		strings.TrimSpace(rc.VehicleBodyType) == "" {
		writeError(w, http.StatusBadRequest, "vehicle_type, vehicle_sub_type and vehicle_body_type are required")
		return
	}
	if rc.RCLFreight <= 0 {
		writeError(w, http.StatusBadRequest, "rcl_freight must be greater than zero")
		return
	}
	if err := h.Repo.Create(&rc); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Rate card created", Data: rc})
}

func (h *RateCardHandler) GetRateCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Repo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: cards})
}

// LookupRateCard resolves the rate card for a vehicle class, so entry forms
// can prefill freight and expense defaults.
func (h *RateCardHandler) LookupRateCard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicleType := q.Get("vehicle_type")
	vehicleSubType := q.Get("vehicle_sub_type")
	vehicleBodyType := q.Get("vehicle_body_type")
	if vehicleType == "" || vehicleSubType == "" || vehicleBodyType == "" {
		writeError(w, http.StatusBadRequest, "vehicle_type, vehicle_sub_type and vehicle_body_type are required")
		return
	}
	rc, err := h.Repo.FindByVehicleClass(vehicleType, vehicleSubType, vehicleBodyType)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if rc == nil {
		writeError(w, http.StatusNotFound, "No rate card for this vehicle class")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: rc})
}

func (h *RateCardHandler) GetPlaceRateCards(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid place id")
		return
	}
	cards, err := h.Repo.GetByPlace(placeID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: cards})
}

func (h *RateCardHandler) AttachToPlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid place id")
		return
	}
	var body struct {
		RateCardID int64 `json:"rate_card_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.RateCardID <= 0 {
		writeError(w, http.StatusBadRequest, "rate_card_id is required")
		return
	}
	if err := h.Repo.AttachToPlace(placeID, body.RateCardID); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Rate card attached"})
}
