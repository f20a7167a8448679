package ports

import (
	"context"

	"freightops/internal/core/domain/model/freightbill"
)

// DocumentRenderer produces printable documents from domain aggregates.
// Rendering is a pure read: a failure is an ExternalServiceError and never
// affects stored state.
type DocumentRenderer interface {
	// RenderBill renders a freight bill as a PDF document.
	RenderBill(ctx context.Context, bill *freightbill.FreightBill) ([]byte, error)
}
