package pdf_test

import (
	"context"
	"testing"
	"time"

	"freightops/internal/adapters/out/pdf"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBill_ProducesPDF(t *testing.T) {
	customer, err := freightbill.NewCustomerSnapshot(
		"Sharma Traders", "14 MG Road", "Pune", "9822012345", "accounts@sharma.example", "27AAAAA0000A1Z5",
	)
	require.NoError(t, err)

	item, err := freightbill.RestoreLineItem(
		kernel.NewUUID(), "CN-1001", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		"Nagpur", 500, kernel.MustMoney(250000), kernel.MustMoney(290000),
	)
	require.NoError(t, err)

	discount, err := freightbill.NewAdjustment(freightbill.Discount, "loyalty discount", kernel.MustMoney(20000))
	require.NoError(t, err)

	bill, err := freightbill.NewFreightBill(
		kernel.NewUUID(), "FB-0001", "Pune", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		kernel.NewUUID(), customer,
		[]freightbill.LineItem{item},
		[]freightbill.Adjustment{discount},
		true,
	)
	require.NoError(t, err)

	renderer := pdf.NewBillRenderer("Maharashtra Road Carriers", "Transport Nagar, Pune 411001")

	document, err := renderer.RenderBill(context.Background(), bill)
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestRenderBill_NotConstructedBill_Fails(t *testing.T) {
	renderer := pdf.NewBillRenderer("Maharashtra Road Carriers", "Transport Nagar, Pune 411001")

	_, err := renderer.RenderBill(context.Background(), &freightbill.FreightBill{})
	require.Error(t, err)
}
