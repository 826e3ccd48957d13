package invoice

import (
	"testing"
	"time"

	"railbook/config"
	"railbook/internal/domain/entity"
	"railbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoiceData() *service.InvoiceData {
	travel := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	return &service.InvoiceData{
		Booking: &entity.Booking{
			ID:         17,
			UserID:     3,
			TrainNo:    "12951",
			FromCity:   "Mumbai",
			ToCity:     "Delhi",
			BookedDate: travel.AddDate(0, 0, -7),
			TravelDate: travel,
			TotalSeats: 2,
			TotalPrice: 500,
		},
		User: &entity.User{
			ID:    3,
			Name:  "alice",
			Phone: "9876543210",
			Email: "alice@example.com",
		},
		Payment: &entity.Payment{
			ID:        9,
			UserID:    3,
			BookingID: 17,
			Method:    "upi",
			Amount:    500,
			Status:    entity.PaymentStatusSuccess,
			PaidAt:    travel.AddDate(0, 0, -7),
		},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	pdf, err := renderer.Render(testInvoiceData())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// A valid PDF starts with the %PDF magic header.
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPDFRenderer_CustomHeading(t *testing.T) {
	cfg := &config.Config{Invoice: &config.InvoiceConfig{CompanyLine: "RAILBOOK EXPRESS"}}
	renderer := NewPDFRenderer(cfg)

	pdf, err := renderer.Render(testInvoiceData())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestPDFRenderer_IncompleteData(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	_, err := renderer.Render(nil)
	assert.Error(t, err)

	data := testInvoiceData()
	data.Payment = nil
	_, err = renderer.Render(data)
	assert.Error(t, err)
}
