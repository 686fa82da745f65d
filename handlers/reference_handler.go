package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"ktlogistics/models"
	"ktlogistics/repository"
)

// ReferenceHandler serves the master-data registries: vehicles, products,
// pumps, drivers, places and dealers.
type ReferenceHandler struct {
	Repo repository.ReferenceRepository
}

func (h *ReferenceHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(v.VehicleNumber) == "" || strings.TrimSpace(v.VehicleType) == "" ||
		strings.TrimSpace(v.OwnerName) == "" || strings.TrimSpace(string(v.OwnerType)) == "" {
		writeError(w, http.StatusBadRequest, "vehicle_number, vehicle_type, owner_name and owner_type are required")
		return
	}
	ownerType, err := models.ParseOwnerType(string(v.OwnerType))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v.OwnerType = ownerType
	if err := h.Repo.CreateVehicle(&v); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Vehicle created", Data: v})
}

func (h *ReferenceHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Repo.GetVehicles()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: vehicles})
}

func (h *ReferenceHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.Repo.CreateProduct(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Product created", Data: p})
}

func (h *ReferenceHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.GetProducts()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: products})
}

func (h *ReferenceHandler) CreatePump(w http.ResponseWriter, r *http.Request) {
	var p models.Pump
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if p.FuelRate < 0 {
		writeError(w, http.StatusBadRequest, "fuel_rate cannot be negative")
		return
	}
	if err := h.Repo.CreatePump(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Pump created", Data: p})
}

func (h *ReferenceHandler) GetPumps(w http.ResponseWriter, r *http.Request) {
	pumps, err := h.Repo.GetPumps()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: pumps})
}

func (h *ReferenceHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.LicenseNumber) == "" {
		writeError(w, http.StatusBadRequest, "name and license_number are required")
		return
	}
	if err := h.Repo.CreateDriver(&d); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Driver created", Data: d})
}

func (h *ReferenceHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.GetDrivers()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: drivers})
}

func (h *ReferenceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var p models.Place
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.ProductName) == "" {
		writeError(w, http.StatusBadRequest, "name and product_name are required")
		return
	}
	ok, err := h.Repo.ProductExists(p.ProductName)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "Product "+p.ProductName+" is not registered")
		return
	}
	if err := h.Repo.CreatePlace(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Place created", Data: p})
}

func (h *ReferenceHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.Repo.GetPlaces()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: places})
}

func (h *ReferenceHandler) CreateDealer(w http.ResponseWriter, r *http.Request) {
	var d models.Dealer
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if d.PlaceID <= 0 || strings.TrimSpace(d.Name) == "" {
		writeError(w, http.StatusBadRequest, "place_id and name are required")
		return
	}
	if err := h.Repo.CreateDealer(&d); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Dealer created", Data: d})
}
