package models

import (
	"fmt"
	"strings"
	"time"
)

// InvoiceAckStatus is the per-invoice settlement decision.
type InvoiceAckStatus string

const (
	AckPending      InvoiceAckStatus = "Pending"
	AckAcknowledged InvoiceAckStatus = "Acknowledged"
	AckShortage     InvoiceAckStatus = "Shortage"
)

// ParseInvoiceAckStatus validates a settlement decision at the boundary.
func ParseInvoiceAckStatus(s string) (InvoiceAckStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "":
		return AckPending, nil
	case "acknowledged":
		return AckAcknowledged, nil
	case "shortage":
		return AckShortage, nil
	}
	return "", fmt.Errorf("invalid acknowledgement status %q", s)
}

// VoucherStatus is derived from the set of per-invoice decisions.
type VoucherStatus string

const (
	VoucherSettled VoucherStatus = "Settled"
	VoucherPending VoucherStatus = "Pending"
)

type Acknowledgement struct {
	ID               int64         `json:"id" bson:"_id,omitempty" db:"id"`
	LoadingAdvanceID int64         `json:"loading_advance_id" bson:"loading_advance_id" db:"loading_advance_id"`
	TotalReturned    float64       `json:"total_returned" bson:"total_returned" db:"total_returned"`
	PendingAmount    float64       `json:"pending_amount" bson:"pending_amount" db:"pending_amount"`
	Status           VoucherStatus `json:"status" bson:"status" db:"status"`
	CreatedAt        time.Time     `json:"created_at" bson:"created_at" db:"created_at"`

	Items []AcknowledgementItem `json:"items,omitempty" bson:"items,omitempty"`

	// Populated on list reads for display.
	VoucherNumber string `json:"voucher_number,omitempty" bson:"voucher_number,omitempty"`
}

type AcknowledgementItem struct {
	ID                      int64            `json:"id" bson:"_id,omitempty" db:"id"`
	AcknowledgementID       int64            `json:"acknowledgement_id" bson:"acknowledgement_id" db:"acknowledgement_id"`
	LoadingAdvanceInvoiceID int64            `json:"loading_advance_invoice_id" bson:"loading_advance_invoice_id" db:"loading_advance_invoice_id"`
	Status                  InvoiceAckStatus `json:"status" bson:"status" db:"status"`
	ReturnedAmount          float64          `json:"returned_amount" bson:"returned_amount" db:"returned_amount"`
}
