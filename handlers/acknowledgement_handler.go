package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"ktlogistics/finance"
	"ktlogistics/models"
	"ktlogistics/repository"
)

type AcknowledgementHandler struct {
	Repo repository.AcknowledgementRepository
}

type ackItemRequest struct {
	LoadingAdvanceInvoiceID int64   `json:"loading_advance_invoice_id"`
	Status                  string  `json:"status"`
	ReturnedAmount          float64 `json:"returned_amount"`
}

type ackRequest struct {
	LoadingAdvanceID int64            `json:"loading_advance_id"`
	Items            []ackItemRequest `json:"items"`
}

// CreateAcknowledgement records per-invoice settlement decisions against a
// voucher. Invoices omitted from the request stay pending with zero returned.
func (h *AcknowledgementHandler) CreateAcknowledgement(w http.ResponseWriter, r *http.Request) {
	var req ackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LoadingAdvanceID <= 0 {
		writeError(w, http.StatusBadRequest, "loading_advance_id is required")
		return
	}

	voucher, err := h.Repo.GetVoucherForAck(req.LoadingAdvanceID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if voucher == nil {
		writeError(w, http.StatusBadRequest, "Loading advance not found")
		return
	}
	if len(voucher.Invoices) == 0 {
		writeError(w, http.StatusBadRequest, "Voucher has no invoices")
		return
	}

	latest, err := h.Repo.LatestStatus(req.LoadingAdvanceID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if latest == models.VoucherSettled {
		writeError(w, http.StatusBadRequest, "Voucher "+voucher.VoucherNumber+" is already settled")
		return
	}

	byInvoiceID := make(map[int64]models.LoadingAdvanceInvoice, len(voucher.Invoices))
	for _, inv := range voucher.Invoices {
		byInvoiceID[inv.ID] = inv
	}
	requested := make(map[int64]ackItemRequest, len(req.Items))
	for _, item := range req.Items {
		if _, ok := byInvoiceID[item.LoadingAdvanceInvoiceID]; !ok {
			writeError(w, http.StatusBadRequest,
				"Invoice "+strconv.FormatInt(item.LoadingAdvanceInvoiceID, 10)+" does not belong to this voucher")
			return
		}
		requested[item.LoadingAdvanceInvoiceID] = item
	}

	decisions := make([]finance.AckDecision, 0, len(voucher.Invoices))
	items := make([]models.AcknowledgementItem, 0, len(voucher.Invoices))
	for _, inv := range voucher.Invoices {
		d := finance.AckDecision{
			InvoiceNumber:  inv.InvoiceNumber,
			IFAAmount:      decimal.NewFromFloat(inv.IFAAmount),
			Status:         models.AckPending,
			ReturnedAmount: decimal.Zero,
		}
		if item, ok := requested[inv.ID]; ok {
			status, err := models.ParseInvoiceAckStatus(item.Status)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Status = status
			d.ReturnedAmount = decimal.NewFromFloat(item.ReturnedAmount)
		}
		if err := finance.ValidateDecision(d); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		decisions = append(decisions, d)
		items = append(items, models.AcknowledgementItem{
			LoadingAdvanceInvoiceID: inv.ID,
			Status:                  d.Status,
			ReturnedAmount:          d.ReturnedAmount.InexactFloat64(),
		})
	}

	total := finance.TotalReturned(decisions)
	tripBalance := decimal.NewFromFloat(voucher.TripBalance)
	if err := finance.ValidateTotal(total, tripBalance); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ack := &models.Acknowledgement{
		LoadingAdvanceID: req.LoadingAdvanceID,
		TotalReturned:    total.InexactFloat64(),
		PendingAmount:    tripBalance.Sub(total).InexactFloat64(),
		Status:           finance.VoucherStatus(decisions),
		Items:            items,
		VoucherNumber:    voucher.VoucherNumber,
	}
	if err := h.Repo.Create(ack); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Acknowledgement recorded", Data: ack})
}

func (h *AcknowledgementHandler) GetAcknowledgements(w http.ResponseWriter, r *http.Request) {
	acks, err := h.Repo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: acks})
}
