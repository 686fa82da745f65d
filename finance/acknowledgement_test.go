package finance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktlogistics/models"
)

func TestValidateDecision(t *testing.T) {
	tests := []struct {
		name     string
		decision AckDecision
		wantErr  error
	}{
		{
			name: "acknowledged exact amount",
			decision: AckDecision{
				InvoiceNumber: "INV-1", IFAAmount: d("5000"),
				Status: models.AckAcknowledged, ReturnedAmount: d("5000"),
			},
		},
		{
			name: "acknowledged within tolerance",
			decision: AckDecision{
				InvoiceNumber: "INV-1", IFAAmount: d("5000"),
				Status: models.AckAcknowledged, ReturnedAmount: d("4999.99"),
			},
		},
		{
			name: "acknowledged short",
			decision: AckDecision{
				InvoiceNumber: "INV-1", IFAAmount: d("5000"),
				Status: models.AckAcknowledged, ReturnedAmount: d("4998"),
			},
			wantErr: ErrAckAmountMismatch,
		},
		{
			name: "shortage in range",
			decision: AckDecision{
				InvoiceNumber: "INV-2", IFAAmount: d("5000"),
				Status: models.AckShortage, ReturnedAmount: d("3000"),
			},
		},
		{
			name: "shortage zero",
			decision: AckDecision{
				InvoiceNumber: "INV-2", IFAAmount: d("5000"),
				Status: models.AckShortage, ReturnedAmount: d("0"),
			},
			wantErr: ErrShortageAmountOutOfRange,
		},
		{
			name: "shortage at full amount",
			decision: AckDecision{
				InvoiceNumber: "INV-2", IFAAmount: d("5000"),
				Status: models.AckShortage, ReturnedAmount: d("5000"),
			},
			wantErr: ErrShortageAmountOutOfRange,
		},
		{
			name: "shortage negative",
			decision: AckDecision{
				InvoiceNumber: "INV-2", IFAAmount: d("5000"),
				Status: models.AckShortage, ReturnedAmount: d("-10"),
			},
			wantErr: ErrShortageAmountOutOfRange,
		},
		{
			name: "pending zero returned",
			decision: AckDecision{
				InvoiceNumber: "INV-3", IFAAmount: d("5000"),
				Status: models.AckPending, ReturnedAmount: d("0"),
			},
		},
		{
			name: "pending with returned amount",
			decision: AckDecision{
				InvoiceNumber: "INV-3", IFAAmount: d("5000"),
				Status: models.AckPending, ReturnedAmount: d("100"),
			},
			wantErr: ErrPendingAmountNotZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecision(tt.decision)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.decision.InvoiceNumber)
		})
	}
}

func TestTotalReturned(t *testing.T) {
	decisions := []AckDecision{
		{ReturnedAmount: d("5000")},
		{ReturnedAmount: d("3000")},
		{ReturnedAmount: d("0")},
	}
	assert.True(t, d("8000").Equal(TotalReturned(decisions)))
	assert.True(t, TotalReturned(nil).IsZero())
}

func TestValidateTotal(t *testing.T) {
	assert.NoError(t, ValidateTotal(d("8000"), d("8000")))
	assert.NoError(t, ValidateTotal(d("7999"), d("8000")))
	assert.ErrorIs(t, ValidateTotal(d("8000.01"), d("8000")), ErrTotalExceedsTripBalance)
}

func TestVoucherStatus(t *testing.T) {
	allAcked := []AckDecision{
		{Status: models.AckAcknowledged},
		{Status: models.AckAcknowledged},
	}
	assert.Equal(t, models.VoucherSettled, VoucherStatus(allAcked))

	mixed := []AckDecision{
		{Status: models.AckAcknowledged},
		{Status: models.AckShortage},
	}
	assert.Equal(t, models.VoucherPending, VoucherStatus(mixed))

	assert.Equal(t, models.VoucherPending, VoucherStatus(nil))
}
