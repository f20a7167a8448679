package ports

import (
	"context"
)

// BillNotification is the payload for a customer-facing bill email: dispatch
// of a sent bill or a payment reminder for an outstanding one.
type BillNotification struct {
	Recipient         string
	CustomerName      string
	BillNo            string
	BillDate          string
	FinalAmount       string
	OutstandingAmount string
}

// Notifier dispatches customer notifications. Implementations are called
// after the owning transaction has committed: a failed send never rolls back
// a state change, it is surfaced to the caller as an ExternalServiceError.
type Notifier interface {
	// SendBill emails the customer that their freight bill has been issued.
	SendBill(ctx context.Context, notification BillNotification) error

	// SendPaymentReminder emails the customer about an outstanding bill.
	SendPaymentReminder(ctx context.Context, notification BillNotification) error
}
