package service

import (
	"bytes"
	"fmt"
	"strings"

	"rathh/internal/domains/booking/model"
	"rathh/shared/constant"

	"github.com/phpdave11/gofpdf"
)

func buildReceiptPDF(booking model.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID    : %s", booking.BookingID),
		fmt.Sprintf("Trip          : %s", booking.TripID),
		fmt.Sprintf("Dates         : %s to %s", orDash(booking.StartDate), orDash(booking.EndDate)),
		fmt.Sprintf("Group Type    : %s", orDash(booking.GroupType)),
		fmt.Sprintf("Traveler      : %s %s", booking.FirstName, booking.LastName),
		fmt.Sprintf("Email         : %s", booking.Email),
		fmt.Sprintf("Phone         : %s", booking.Phone),
		fmt.Sprintf("Travelers     : %d", booking.TravelerCount),
		fmt.Sprintf("Confirmed At  : %s", booking.ConfirmedAt.Format(constant.DateFormat)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pricing")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pricing := []string{
		fmt.Sprintf("Price / person: %.2f", booking.PricePerPerson),
		fmt.Sprintf("Subtotal      : %.2f", booking.Subtotal),
		fmt.Sprintf("Tax           : %.2f", booking.Tax),
		fmt.Sprintf("Total         : %.2f", booking.Total),
	}
	for _, line := range pricing {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt confirms your tour booking. Keep it for your records and present it at the meeting point.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write receipt pdf: %w", err)
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(booking.BookingID))

	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if s == constant.Empty {
		return "-"
	}

	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
