// Package pdf implements the DocumentRenderer port with gofpdf. It lays out a
// freight bill as an A4 document: company header, customer block, line-item
// table, adjustments, and the payable amount in figures and words.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/numwords"

	"github.com/jung-kurt/gofpdf/v2"
)

// BillRenderer renders freight bills as PDF documents.
type BillRenderer struct {
	companyName    string
	companyAddress string
}

// NewBillRenderer creates a renderer with the company letterhead details.
func NewBillRenderer(companyName, companyAddress string) *BillRenderer {
	return &BillRenderer{
		companyName:    companyName,
		companyAddress: companyAddress,
	}
}

// RenderBill renders a freight bill as a PDF document. Rendering never
// touches stored state; a failure surfaces as an ExternalServiceError.
func (r *BillRenderer) RenderBill(_ context.Context, bill *freightbill.FreightBill) ([]byte, error) {
	if err := bill.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, r.companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, r.companyAddress, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 9, "FREIGHT BILL", "1", 1, "C", false, 0, "")

	// Bill header
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill No: %s", bill.BillNo()), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill Date: %s", bill.BillDate().Format("02-01-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Branch: %s", bill.Branch()), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", bill.Status()), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Customer block
	customer := bill.Customer()
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Billed To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(190, 7, customer.Name(), "LR", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("%s, %s", customer.Address(), customer.City()), "LR", 1, "L", false, 0, "")
	gstin := customer.GSTIN()
	if gstin == "" {
		gstin = "-"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Mobile: %s", customer.Mobile()), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("GSTIN: %s", gstin), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Line-item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "CN No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Booking Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(42, 7, "Destination", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Weight (kg)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Freight", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range bill.LineItems() {
		destination := item.Destination()
		if len(destination) > 24 {
			destination = destination[:21] + "..."
		}
		pdf.CellFormat(30, 6, item.ConsignmentNo(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 6, item.BookingDate().Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(42, 6, destination, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", item.ChargedWeightKg()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, formatAmount(item.Freight()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, formatAmount(item.GrandTotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(155, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, formatAmount(bill.TotalAmount()), "1", 1, "R", false, 0, "")
	pdf.Ln(3)

	// Adjustments
	if len(bill.Adjustments()) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Adjustments", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, adjustment := range bill.Adjustments() {
			sign := "+"
			if adjustment.Type().IsSubtractive() {
				sign = "-"
			}
			description := adjustment.Description()
			if description == "" {
				description = adjustment.Type().String()
			}
			pdf.CellFormat(155, 6, fmt.Sprintf("%s (%s)", description, adjustment.Type()), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 6, sign+" "+formatAmount(adjustment.Amount()), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Payable
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(190, 9, fmt.Sprintf("Amount Payable: Rs. %s", formatAmount(bill.FinalAmount())), "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(190, 7, numwords.RupeesInWords(bill.FinalAmount().Amount()), "1", 1, "C", false, 0, "")

	if !bill.AmountPaid().IsZero() {
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(95, 7, fmt.Sprintf("Amount Received: Rs. %s", formatAmount(bill.AmountPaid())), "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Balance: Rs. %s", formatAmount(bill.OutstandingAmount())), "1", 1, "L", false, 0, "")
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errs.NewExternalServiceError("pdf", err)
	}

	return buffer.Bytes(), nil
}

func formatAmount(amount kernel.Money) string {
	return fmt.Sprintf("%d.%02d", amount.Amount()/100, amount.Amount()%100)
}
