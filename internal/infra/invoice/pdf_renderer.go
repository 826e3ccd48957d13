// Package invoice renders passenger ticket invoices as PDF documents.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"railbook/config"
	"railbook/internal/domain/service"
)

const (
	defaultHeading = "ONLINE TRAIN TICKET BOOKING"
	subtitle       = "Passenger Ticket Invoice"
	footerLine     = "Thank you for booking with us! Have a safe journey."

	qrSizePx = 256
	qrSizeMM = 30.0
)

// pdfRenderer implements service.InvoiceRenderer using fpdf. Each invoice
// carries the booking details plus a QR code of the booking reference for
// gate-side scanning.
type pdfRenderer struct {
	heading string
}

// NewPDFRenderer is the constructor for pdfRenderer.
func NewPDFRenderer(cfg *config.Config) service.InvoiceRenderer {
	heading := defaultHeading
	if cfg != nil && cfg.Invoice != nil && cfg.Invoice.CompanyLine != "" {
		heading = cfg.Invoice.CompanyLine
	}

	return &pdfRenderer{heading: heading}
}

// Render produces the invoice PDF for a booking with its user and payment.
func (r *pdfRenderer) Render(data *service.InvoiceData) ([]byte, error) {
	if data == nil || data.Booking == nil || data.User == nil || data.Payment == nil {
		return nil, errors.New("invoice data is incomplete")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Heading block.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, r.heading, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, subtitle, "", 1, "C", false, 0, "")

	pdf.SetDrawColor(128, 128, 128)
	y := pdf.GetY() + 2
	pdf.Line(15, y, pageWidth-15, y)
	pdf.SetY(y + 6)

	// Detail lines, label: value, centered like the printed ticket stub.
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range r.detailLines(data) {
		pdf.CellFormat(0, 8, line, "", 1, "C", false, 0, "")
	}

	if err := r.drawBookingQR(pdf, data.Booking.ID, pageWidth); err != nil {
		return nil, err
	}

	// Footer.
	pdf.SetY(-35)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, footerLine, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Issued: "+time.Now().Format("02-01-2006 15:04"), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write invoice pdf")
	}

	return buf.Bytes(), nil
}

func (r *pdfRenderer) detailLines(data *service.InvoiceData) []string {
	booking := data.Booking
	payment := data.Payment

	return []string{
		fmt.Sprintf("Passenger Name: %s", data.User.Name),
		fmt.Sprintf("Phone: %s", data.User.Phone),
		fmt.Sprintf("Train Number: %s", booking.TrainNo),
		fmt.Sprintf("From: %s", booking.FromCity),
		fmt.Sprintf("To: %s", booking.ToCity),
		fmt.Sprintf("Booking Date: %s", booking.BookedDate.Format("02-01-2006")),
		fmt.Sprintf("Date of Travel: %s", booking.TravelDate.Format("02-01-2006")),
		fmt.Sprintf("Seats Booked: %d", booking.TotalSeats),
		fmt.Sprintf("Total Price: INR %d", booking.TotalPrice),
		fmt.Sprintf("Payment Method: %s", payment.Method),
		fmt.Sprintf("Payment Status: %s", payment.Status),
		fmt.Sprintf("Payment Date: %s", payment.PaidAt.Format("02-01-2006 15:04")),
	}
}

// drawBookingQR embeds a QR code carrying the booking reference.
func (r *pdfRenderer) drawBookingQR(pdf *fpdf.Fpdf, bookingID int64, pageWidth float64) error {
	ref := fmt.Sprintf("railbook:booking:%d", bookingID)

	png, err := qrcode.Encode(ref, qrcode.Medium, qrSizePx)
	if err != nil {
		return errors.Wrap(err, "failed to encode booking qr code")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("booking-qr", (pageWidth-qrSizeMM)/2, pdf.GetY()+4, qrSizeMM, qrSizeMM, false, opts, 0, "")

	return nil
}
