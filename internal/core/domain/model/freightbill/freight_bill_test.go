package freightbill_test

import (
	"testing"
	"time"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLineItem(t *testing.T, consignmentNo string, grandTotal int64) freightbill.LineItem {
	t.Helper()
	item, err := freightbill.RestoreLineItem(
		kernel.NewUUID(), consignmentNo,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		"Nagpur", 100,
		kernel.MustMoney(grandTotal), kernel.MustMoney(grandTotal),
	)
	require.NoError(t, err)
	return item
}

func testSnapshot(t *testing.T) freightbill.CustomerSnapshot {
	t.Helper()
	s, err := freightbill.NewCustomerSnapshot("Sharma Traders", "12 Transport Nagar", "Pune", "9876543210", "accounts@sharma.example", "")
	require.NoError(t, err)
	return s
}

// newBill builds a Draft bill over the given line items with no adjustments.
func newBill(t *testing.T, items []freightbill.LineItem, adjustments []freightbill.Adjustment) *freightbill.FreightBill {
	t.Helper()
	b, err := freightbill.NewFreightBill(
		kernel.NewUUID(), "FB-2025-041", "Branch-A",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		kernel.NewUUID(), testSnapshot(t), items, adjustments, false,
	)
	require.NoError(t, err)
	return b
}

func TestNewFreightBill(t *testing.T) {
	t.Run("consolidates line items with a discount", func(t *testing.T) {
		items := []freightbill.LineItem{
			testLineItem(t, "CN-1001", 100000),
			testLineItem(t, "CN-1002", 150000),
		}
		discount, err := freightbill.NewAdjustment(freightbill.Discount, "loyalty", kernel.MustMoney(20000))
		require.NoError(t, err)

		b := newBill(t, items, []freightbill.Adjustment{discount})

		assert.Equal(t, freightbill.Draft, b.Status())
		assert.Equal(t, int64(250000), b.TotalAmount().Amount())
		assert.Equal(t, int64(230000), b.FinalAmount().Amount())
		assert.Equal(t, int64(230000), b.OutstandingAmount().Amount())
		assert.True(t, b.AmountPaid().IsZero())
		assert.Equal(t, 1, b.Version())
	})

	t.Run("surcharges add while discounts subtract", func(t *testing.T) {
		items := []freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}
		discount, _ := freightbill.NewAdjustment(freightbill.Discount, "loyalty", kernel.MustMoney(10000))
		fuel, _ := freightbill.NewAdjustment(freightbill.FuelSurcharge, "diesel hike", kernel.MustMoney(5000))
		extra, _ := freightbill.NewAdjustment(freightbill.ExtraCharge, "waiting", kernel.MustMoney(2500))

		b := newBill(t, items, []freightbill.Adjustment{discount, fuel, extra})

		assert.Equal(t, int64(97500), b.FinalAmount().Amount())
	})

	t.Run("asGenerated starts at Generated", func(t *testing.T) {
		b, err := freightbill.NewFreightBill(
			kernel.NewUUID(), "FB-2025-042", "Branch-A", time.Now(),
			kernel.NewUUID(), testSnapshot(t),
			[]freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}, nil, true,
		)
		require.NoError(t, err)
		assert.Equal(t, freightbill.Generated, b.Status())
	})

	t.Run("rejects empty line items", func(t *testing.T) {
		_, err := freightbill.NewFreightBill(
			kernel.NewUUID(), "FB-2025-043", "Branch-A", time.Now(),
			kernel.NewUUID(), testSnapshot(t), nil, nil, false,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative adjusted total", func(t *testing.T) {
		items := []freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}
		discount, _ := freightbill.NewAdjustment(freightbill.Discount, "writeoff", kernel.MustMoney(100001))

		_, err := freightbill.NewFreightBill(
			kernel.NewUUID(), "FB-2025-044", "Branch-A", time.Now(),
			kernel.NewUUID(), testSnapshot(t), items, []freightbill.Adjustment{discount}, false,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero adjusted total", func(t *testing.T) {
		// Discounts that consume the whole total would leave a bill no
		// payment can ever settle.
		items := []freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}
		discount, _ := freightbill.NewAdjustment(freightbill.Discount, "writeoff", kernel.MustMoney(100000))

		_, err := freightbill.NewFreightBill(
			kernel.NewUUID(), "FB-2025-044", "Branch-A", time.Now(),
			kernel.NewUUID(), testSnapshot(t), items, []freightbill.Adjustment{discount}, false,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing bill number", func(t *testing.T) {
		_, err := freightbill.NewFreightBill(
			kernel.NewUUID(), "", "Branch-A", time.Now(),
			kernel.NewUUID(), testSnapshot(t),
			[]freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}, nil, false,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAdjustment(t *testing.T) {
	t.Run("non-zero amount requires a description", func(t *testing.T) {
		_, err := freightbill.NewAdjustment(freightbill.Discount, "", kernel.MustMoney(100))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero amount needs no description", func(t *testing.T) {
		a, err := freightbill.NewAdjustment(freightbill.OtherAdjustment, "", kernel.MustMoney(0))
		require.NoError(t, err)
		assert.True(t, a.Amount().IsZero())
	})

	t.Run("only discount subtracts", func(t *testing.T) {
		assert.True(t, freightbill.Discount.IsSubtractive())
		assert.False(t, freightbill.ExtraCharge.IsSubtractive())
		assert.False(t, freightbill.FuelSurcharge.IsSubtractive())
		assert.False(t, freightbill.OtherAdjustment.IsSubtractive())
	})

	t.Run("parses wire names", func(t *testing.T) {
		typ, err := freightbill.AdjustmentTypeFromString("FUEL_SURCHARGE")
		require.NoError(t, err)
		assert.Equal(t, freightbill.FuelSurcharge, typ)

		_, err = freightbill.AdjustmentTypeFromString("REBATE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Apply_Exhaustive(t *testing.T) {
	statuses := []freightbill.Status{
		freightbill.Draft, freightbill.Generated, freightbill.Sent,
		freightbill.PartiallyPaid, freightbill.Paid, freightbill.Cancelled,
	}
	operations := []freightbill.Operation{
		freightbill.OpGenerate, freightbill.OpSend, freightbill.OpRecordPayment,
		freightbill.OpMarkPaid, freightbill.OpCancel,
	}

	legal := map[freightbill.Status]map[freightbill.Operation]freightbill.Status{
		freightbill.Draft: {
			freightbill.OpGenerate: freightbill.Generated,
			freightbill.OpCancel:   freightbill.Cancelled,
		},
		freightbill.Generated: {
			freightbill.OpSend:          freightbill.Sent,
			freightbill.OpRecordPayment: freightbill.PartiallyPaid,
			freightbill.OpMarkPaid:      freightbill.Paid,
			freightbill.OpCancel:        freightbill.Cancelled,
		},
		freightbill.Sent: {
			freightbill.OpRecordPayment: freightbill.PartiallyPaid,
			freightbill.OpMarkPaid:      freightbill.Paid,
			freightbill.OpCancel:        freightbill.Cancelled,
		},
		freightbill.PartiallyPaid: {
			freightbill.OpRecordPayment: freightbill.PartiallyPaid,
			freightbill.OpMarkPaid:      freightbill.Paid,
			freightbill.OpCancel:        freightbill.Cancelled,
		},
		freightbill.Paid:      {},
		freightbill.Cancelled: {},
	}

	for _, status := range statuses {
		for _, op := range operations {
			t.Run(status.String()+"_"+string(op), func(t *testing.T) {
				next, err := status.Apply(op)

				if want, ok := legal[status][op]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.ErrorContains(t, err, string(op))
				assert.ErrorContains(t, err, status.String())
			})
		}
	}
}

func TestFreightBill_Payments(t *testing.T) {
	items := []freightbill.LineItem{
		testLineItem(t, "CN-1001", 100000),
		testLineItem(t, "CN-1002", 150000),
	}

	t.Run("partial then full payment settles the bill", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())
		require.NoError(t, b.Send())

		settled, err := b.RecordPayment(kernel.MustMoney(100000), false)
		require.NoError(t, err)
		assert.False(t, settled)
		assert.Equal(t, freightbill.PartiallyPaid, b.Status())
		assert.Equal(t, int64(150000), b.OutstandingAmount().Amount())

		settled, err = b.RecordPayment(kernel.MustMoney(150000), false)
		require.NoError(t, err)
		assert.True(t, settled)
		assert.Equal(t, freightbill.Paid, b.Status())
		assert.True(t, b.OutstandingAmount().IsZero())
	})

	t.Run("overpayment is rejected", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())

		_, err := b.RecordPayment(kernel.MustMoney(250001), false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, freightbill.Generated, b.Status())
		assert.True(t, b.AmountPaid().IsZero())
	})

	t.Run("draft bills accept no payments", func(t *testing.T) {
		b := newBill(t, items, nil)

		_, err := b.RecordPayment(kernel.MustMoney(100000), false)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("requireSent blocks settling a generated bill", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())

		_, err := b.RecordPayment(kernel.MustMoney(250000), true)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		require.ErrorIs(t, b.MarkPaid(true), errs.ErrInvalidTransition)
		assert.Equal(t, freightbill.Generated, b.Status())
	})

	t.Run("generated bill can settle directly when policy allows", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())

		require.NoError(t, b.MarkPaid(false))
		assert.Equal(t, freightbill.Paid, b.Status())
		assert.Equal(t, int64(250000), b.AmountPaid().Amount())
	})

	t.Run("paid bill is closed", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())
		require.NoError(t, b.MarkPaid(false))

		require.ErrorIs(t, b.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, b.UpdateHeader("FB-2025-099", "Branch-B", time.Now()), errs.ErrInvalidTransition)
		require.ErrorIs(t, b.CanDelete(), errs.ErrInvalidTransition)
	})
}

func TestFreightBill_HeaderAndDeletion(t *testing.T) {
	items := []freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}

	t.Run("header edits allowed before settlement", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())

		newDate := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		require.NoError(t, b.UpdateHeader("FB-2025-050", "Branch-B", newDate))
		assert.Equal(t, "FB-2025-050", b.BillNo())
		assert.Equal(t, "Branch-B", b.Branch())
		assert.Equal(t, newDate, b.BillDate())
	})

	t.Run("unpaid bill may be deleted", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.CanDelete())

		require.NoError(t, b.Cancel())
		require.NoError(t, b.CanDelete())
	})

	t.Run("bill with recorded payment may not be deleted", func(t *testing.T) {
		b := newBill(t, items, nil)
		require.NoError(t, b.Generate())
		_, err := b.RecordPayment(kernel.MustMoney(40000), false)
		require.NoError(t, err)

		require.ErrorIs(t, b.CanDelete(), errs.ErrInvalidTransition)
	})
}

func TestFreightBill_ConsignmentLookup(t *testing.T) {
	first := testLineItem(t, "CN-1001", 100000)
	second := testLineItem(t, "CN-1002", 150000)
	b := newBill(t, []freightbill.LineItem{first, second}, nil)

	assert.True(t, b.ContainsConsignment(first.ConsignmentID()))
	assert.True(t, b.ContainsConsignment(second.ConsignmentID()))
	assert.False(t, b.ContainsConsignment(kernel.NewUUID()))

	ids := b.ConsignmentIDs()
	require.Len(t, ids, 2)
	assert.True(t, ids[0].IsEqual(first.ConsignmentID()))
	assert.True(t, ids[1].IsEqual(second.ConsignmentID()))
}

func TestRestoreFreightBill(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		items := []freightbill.LineItem{testLineItem(t, "CN-1001", 100000)}
		original := newBill(t, items, nil)
		require.NoError(t, original.Generate())

		restored, err := freightbill.RestoreFreightBill(freightbill.BillSnapshot{
			ID:          original.ID(),
			BillNo:      original.BillNo(),
			Branch:      original.Branch(),
			BillDate:    original.BillDate(),
			CustomerID:  original.CustomerID(),
			Customer:    original.Customer(),
			LineItems:   original.LineItems(),
			Adjustments: original.Adjustments(),
			TotalAmount: original.TotalAmount(),
			AmountPaid:  kernel.MustMoney(25000),
			Status:      freightbill.PartiallyPaid,
			Version:     3,
		})
		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, freightbill.PartiallyPaid, restored.Status())
		assert.Equal(t, int64(25000), restored.AmountPaid().Amount())
		assert.Equal(t, int64(75000), restored.OutstandingAmount().Amount())
		assert.Equal(t, 3, restored.Version())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := freightbill.RestoreFreightBill(freightbill.BillSnapshot{
			ID:         kernel.NewUUID(),
			BillNo:     "FB-2025-060",
			BillDate:   time.Now(),
			CustomerID: kernel.NewUUID(),
			Status:     freightbill.Status(42),
			Version:    1,
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
