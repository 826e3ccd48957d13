package service

import "railbook/internal/domain/entity"

// InvoiceData bundles the rows an invoice is rendered from. All three
// references must be present; lookups and 404 handling happen in the use case.
type InvoiceData struct {
	Booking *entity.Booking
	User    *entity.User
	Payment *entity.Payment
}

// InvoiceRenderer turns booking/user/payment data into a downloadable PDF.
type InvoiceRenderer interface {
	// Render produces the PDF bytes for the given invoice data.
	Render(data *InvoiceData) ([]byte, error)
}
