package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"outpass-backend/internal/models"
	"outpass-backend/internal/timeutil"
)

// SlipService renders printable outpass slips for the gate register.
type SlipService struct{}

func NewSlipService() *SlipService {
	return &SlipService{}
}

// RenderHomeVisitSlip produces an A4 PDF slip for a home-visit record.
func (s *SlipService) RenderHomeVisitSlip(hv *models.HomeVisit) ([]byte, error) {
	rows := [][2]string{
		{"Departure Date", timeutil.FormatIST(hv.DepartureDate, timeutil.DateLayout)},
		{"Expected Return", timeutil.FormatIST(hv.ReturnDate, timeutil.DateLayout)},
	}
	return renderSlip("HOME VISIT OUTPASS", &hv.Outpass, rows)
}

// RenderOutingSlip produces an A4 PDF slip for an outing record.
func (s *SlipService) RenderOutingSlip(o *models.Outing) ([]byte, error) {
	rows := [][2]string{
		{"Departure Time", timeutil.FormatIST(o.DepartureTime, timeutil.DisplayLayout)},
	}
	return renderSlip("OUTING OUTPASS", &o.Outpass, rows)
}

func renderSlip(title string, base *models.Outpass, detailRows [][2]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Hostel Management - "+title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Student box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Student", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", base.StudentName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Outpass No: %d", base.ID), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Hostel: %s", base.HostelNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Room: %s", base.RoomNumber), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Details", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, row := range detailRows {
		pdf.CellFormat(95, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, row[1], "1", 1, "L", false, 0, "")
	}

	status := "NOT RETURNED"
	if base.Entered {
		status = "RETURNED"
	}
	pdf.CellFormat(95, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, status, "1", 1, "L", false, 0, "")
	pdf.Ln(10)

	// Signature lines for the gate register
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, "Warden Signature: ____________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Guard Signature: ____________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render slip: %w", err)
	}
	return buf.Bytes(), nil
}
