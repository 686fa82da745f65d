package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"ktlogistics/finance"
	"ktlogistics/models"
	"ktlogistics/repository"
	"ktlogistics/utils"
	"ktlogistics/voucherno"
)

type LoadingAdvanceHandler struct {
	Repo    repository.LoadingAdvanceRepository
	RefRepo repository.ReferenceRepository

	// DefaultBranch backs requests that carry no login_prefix.
	DefaultBranch string
}

type invoiceLineRequest struct {
	InvoiceNumber string   `json:"invoice_number"`
	ToPlace       string   `json:"to_place"`
	DealerName    string   `json:"dealer_name"`
	Quantity      *float64 `json:"quantity"`
	KTFreight     *float64 `json:"kt_freight"`
}

type loadingAdvanceRequest struct {
	LoginPrefix          string               `json:"login_prefix"`
	VehicleNumber        string               `json:"vehicle_number"`
	VehicleType          string               `json:"vehicle_type"`
	VehicleSubType       string               `json:"vehicle_sub_type"`
	VehicleBodyType      string               `json:"vehicle_body_type"`
	OwnerName            string               `json:"owner_name"`
	OwnerType            string               `json:"owner_type"`
	DriverName           string               `json:"driver_name"`
	ProductName          string               `json:"product_name"`
	InvoiceDate          string               `json:"invoice_date"`
	DriverBata           *float64             `json:"driver_bata"`
	Unloading            *float64             `json:"unloading"`
	Tarpaulin            *float64             `json:"tarpaulin"`
	CityTax              *float64             `json:"city_tax"`
	Maintenance          *float64             `json:"maintenance"`
	PumpName             string               `json:"pump_name"`
	FuelLitre            *float64             `json:"fuel_litre"`
	FuelRate             *float64             `json:"fuel_rate"`
	DriverLoadingAdvance *float64             `json:"driver_loading_advance"`
	Invoices             []invoiceLineRequest `json:"invoices"`
}

func (req *loadingAdvanceRequest) missingFields() []string {
	var missing []string
	checkStr := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	checkNum := func(name string, v *float64) {
		if v == nil {
			missing = append(missing, name)
		}
	}
	checkStr("vehicle_number", req.VehicleNumber)
	checkStr("vehicle_type", req.VehicleType)
	checkStr("vehicle_sub_type", req.VehicleSubType)
	checkStr("vehicle_body_type", req.VehicleBodyType)
	checkStr("owner_name", req.OwnerName)
	checkStr("owner_type", req.OwnerType)
	checkStr("product_name", req.ProductName)
	checkStr("invoice_date", req.InvoiceDate)
	checkNum("driver_bata", req.DriverBata)
	checkNum("unloading", req.Unloading)
	checkStr("pump_name", req.PumpName)
	checkNum("fuel_litre", req.FuelLitre)
	checkNum("fuel_rate", req.FuelRate)
	checkNum("driver_loading_advance", req.DriverLoadingAdvance)
	return missing
}

func parseInvoiceDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func numOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// CreateLoadingAdvance validates the trip submission, derives the financial
// summary and persists the voucher with a branch/financial-year number.
func (h *LoadingAdvanceHandler) CreateLoadingAdvance(w http.ResponseWriter, r *http.Request) {
	var req loadingAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if len(req.Invoices) == 0 {
		writeError(w, http.StatusBadRequest, "At least one invoice is required")
		return
	}

	invoiceDate, err := parseInvoiceDate(req.InvoiceDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid invoice_date, expected YYYY-MM-DD")
		return
	}

	ownerType, err := models.ParseOwnerType(req.OwnerType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.RefRepo.VehicleByNumber(req.VehicleNumber)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if vehicle == nil {
		writeError(w, http.StatusBadRequest, "Vehicle "+req.VehicleNumber+" is not registered")
		return
	}
	productOK, err := h.RefRepo.ProductExists(req.ProductName)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !productOK {
		writeError(w, http.StatusBadRequest, "Product "+req.ProductName+" is not registered")
		return
	}

	driverName := strings.TrimSpace(req.DriverName)
	if driverName == "" && !ownerType.Commissioned() {
		writeError(w, http.StatusBadRequest, "Driver name is required for owner type "+string(ownerType))
		return
	}

	pump, err := h.RefRepo.PumpByName(req.PumpName)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if pump == nil {
		writeError(w, http.StatusBadRequest, "Pump "+req.PumpName+" is not registered")
		return
	}
	fuelRate := *req.FuelRate
	if fuelRate == 0 {
		fuelRate = pump.FuelRate
	}

	seen := make(map[string]bool, len(req.Invoices))
	lines := make([]finance.InvoiceLine, 0, len(req.Invoices))
	invoices := make([]models.LoadingAdvanceInvoice, 0, len(req.Invoices))
	for i, line := range req.Invoices {
		pos := strconv.Itoa(i + 1)
		if strings.TrimSpace(line.InvoiceNumber) == "" || strings.TrimSpace(line.ToPlace) == "" ||
			strings.TrimSpace(line.DealerName) == "" || line.Quantity == nil || line.KTFreight == nil {
			writeError(w, http.StatusBadRequest, "Invoice "+pos+" is missing required fields")
			return
		}
		if seen[line.InvoiceNumber] {
			writeError(w, http.StatusBadRequest, "Duplicate invoice number "+line.InvoiceNumber+" in submission")
			return
		}
		seen[line.InvoiceNumber] = true

		place, err := h.RefRepo.FindPlace(line.ToPlace, req.ProductName)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if place == nil {
			writeError(w, http.StatusBadRequest, "Place "+line.ToPlace+" is not registered for product "+req.ProductName)
			return
		}
		dealerOK, err := h.RefRepo.DealerExists(place.ID, line.DealerName)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if !dealerOK {
			writeError(w, http.StatusBadRequest, "Dealer "+line.DealerName+" is not registered under "+line.ToPlace)
			return
		}

		lines = append(lines, finance.InvoiceLine{
			Quantity:  decimal.NewFromFloat(*line.Quantity),
			KTFreight: decimal.NewFromFloat(*line.KTFreight),
		})
		invoices = append(invoices, models.LoadingAdvanceInvoice{
			InvoiceNumber: line.InvoiceNumber,
			ToPlace:       line.ToPlace,
			DealerName:    line.DealerName,
			KTFreight:     *line.KTFreight,
			Quantity:      *line.Quantity,
		})
	}

	result := finance.Derive(finance.TripInput{
		OwnerType:            ownerType,
		VehicleBodyType:      req.VehicleBodyType,
		Lines:                lines,
		DriverBata:           decimal.NewFromFloat(*req.DriverBata),
		Unloading:            decimal.NewFromFloat(*req.Unloading),
		Tarpaulin:            decimal.NewFromFloat(numOrZero(req.Tarpaulin)),
		CityTax:              decimal.NewFromFloat(numOrZero(req.CityTax)),
		Maintenance:          decimal.NewFromFloat(numOrZero(req.Maintenance)),
		FuelLitre:            decimal.NewFromFloat(*req.FuelLitre),
		FuelRate:             decimal.NewFromFloat(fuelRate),
		DriverLoadingAdvance: decimal.NewFromFloat(*req.DriverLoadingAdvance),
	})

	for i := range invoices {
		invoices[i].IFAAmount = result.LineIFAs[i].InexactFloat64()
	}

	la := &models.LoadingAdvance{
		VehicleNumber:        req.VehicleNumber,
		VehicleType:          req.VehicleType,
		VehicleSubType:       req.VehicleSubType,
		VehicleBodyType:      req.VehicleBodyType,
		OwnerName:            req.OwnerName,
		OwnerType:            ownerType,
		ProductName:          req.ProductName,
		InvoiceDate:          invoiceDate,
		InvoiceNumber:        invoices[0].InvoiceNumber,
		ToPlace:              invoices[0].ToPlace,
		DealerName:           invoices[0].DealerName,
		KTFreight:            invoices[0].KTFreight,
		Quantity:             invoices[0].Quantity,
		IFAAmount:            invoices[0].IFAAmount,
		SumIFAs:              result.SumIFAs.InexactFloat64(),
		CommissionPct:        result.CommissionPct.InexactFloat64(),
		PredefinedExpenses:   result.PredefinedExpenses.InexactFloat64(),
		DriverBata:           *req.DriverBata,
		Unloading:            *req.Unloading,
		Tarpaulin:            result.EffectiveTarpaulin.InexactFloat64(),
		CityTax:              numOrZero(req.CityTax),
		Maintenance:          numOrZero(req.Maintenance),
		PumpName:             req.PumpName,
		FuelLitre:            *req.FuelLitre,
		FuelRate:             fuelRate,
		FuelAmount:           result.FuelAmount.InexactFloat64(),
		DriverLoadingAdvance: *req.DriverLoadingAdvance,
		GrossAmount:          result.GrossAmount.InexactFloat64(),
		TripBalance:          result.TripBalance.InexactFloat64(),
		Invoices:             invoices,
	}
	if driverName != "" {
		la.DriverName = &driverName
	}
	la.TripBalanceWords = utils.AmountInWords(la.TripBalance)

	loginPrefix := strings.TrimSpace(req.LoginPrefix)
	if loginPrefix == "" {
		loginPrefix = h.DefaultBranch
	}
	branchCode, fallback := voucherno.NormalizeBranch(loginPrefix)
	if fallback {
		logrus.WithField("login_prefix", loginPrefix).Warn("unknown branch alias, using head office code")
	}
	if err := h.Repo.Create(la, branchCode, time.Now()); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Loading advance created", Data: la})
}

// NextVoucherNumber previews the voucher number the next submission from this
// branch would receive. The preview is not a reservation.
func (h *LoadingAdvanceHandler) NextVoucherNumber(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("login_prefix")
	if prefix == "" {
		prefix = h.DefaultBranch
	}
	if prefix == "" {
		writeError(w, http.StatusBadRequest, "login_prefix is required")
		return
	}
	branchCode, fallback := voucherno.NormalizeBranch(prefix)
	if fallback {
		logrus.WithField("login_prefix", prefix).Warn("unknown branch alias, using head office code")
	}
	vn, err := h.Repo.PeekNextVoucherNumber(branchCode, time.Now())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{"voucher_number": vn}})
}

func (h *LoadingAdvanceHandler) GetLoadingAdvances(w http.ResponseWriter, r *http.Request) {
	advances, err := h.Repo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: advances})
}

func (h *LoadingAdvanceHandler) GetLoadingAdvanceInvoices(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loading advance id")
		return
	}
	invoices, err := h.Repo.GetInvoices(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: invoices})
}
