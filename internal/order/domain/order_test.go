package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/validation"
)

func validAddress() Address {
	return Address{
		Street:       "Rua Augusta",
		Number:       "1500",
		Neighborhood: "Consolação",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01304-001",
	}
}

func TestRecalculateTotalInvariant(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{Price: 25, Quantity: 2},
			{Price: 50, Quantity: 1},
		},
		ShippingCost: 15,
		Discount:     10,
	}

	o.Recalculate()

	assert.Equal(t, 50.0, o.Items[0].Total)
	assert.Equal(t, 100.0, o.Subtotal)
	assert.Equal(t, 105.0, o.Total)
	assert.Equal(t, o.Subtotal+o.ShippingCost-o.Discount, o.Total)
}

func TestSettersKeepTotalInvariant(t *testing.T) {
	o := Order{Items: []OrderItem{{Price: 10, Quantity: 3}}}
	o.Recalculate()

	o.SetShippingCost(12)
	assert.Equal(t, 42.0, o.Total)

	o.SetDiscount(2)
	assert.Equal(t, 40.0, o.Total)

	o.AddItem(OrderItem{Price: 5, Quantity: 2})
	assert.Equal(t, 50.0, o.Total)
}

func TestStatusTransitionLegality(t *testing.T) {
	legal := []struct{ from, to string }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusProcessing},
		{StatusConfirmed, StatusCancelled},
		{StatusProcessing, StatusShipped},
		{StatusProcessing, StatusCancelled},
		{StatusShipped, StatusDelivered},
		{StatusDelivered, StatusRefunded},
		{StatusShipped, StatusShipped},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct{ from, to string }{
		{StatusPending, StatusShipped},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusRefunded, StatusDelivered},
		{StatusPending, StatusRefunded},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be illegal", tc.from, tc.to)
	}
}

func TestTransitionToRejectsIllegalMove(t *testing.T) {
	o := Order{Status: StatusPending}

	err := o.TransitionTo(StatusShipped)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "status")
	assert.Equal(t, StatusPending, o.Status)
}

func TestShippedAtSetExactlyOnce(t *testing.T) {
	o := Order{Status: StatusProcessing}

	require.NoError(t, o.TransitionTo(StatusShipped))
	require.NotNil(t, o.ShippedAt)
	first := *o.ShippedAt

	// repeating the current status is a no-op
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, o.TransitionTo(StatusShipped))
	assert.Equal(t, first, *o.ShippedAt)

	require.NoError(t, o.TransitionTo(StatusDelivered))
	assert.Equal(t, first, *o.ShippedAt)
	assert.NotNil(t, o.DeliveredAt)
}

func TestTransitionToUnknownStatus(t *testing.T) {
	o := Order{Status: StatusPending}

	err := o.TransitionTo("teleported")

	_, ok := validation.AsErrors(err)
	assert.True(t, ok)
}

func TestOrderValidateReportsEveryInvalidField(t *testing.T) {
	o := Order{
		Items:        []OrderItem{{Price: -1, Quantity: 0}},
		ShippingCost: -5,
		Discount:     -2,
	}

	err := o.Validate()

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "customer_name")
	assert.Contains(t, verrs, "customer_email")
	assert.Contains(t, verrs, "items")
	assert.Contains(t, verrs, "shipping_cost")
	assert.Contains(t, verrs, "discount")
	assert.Contains(t, verrs, "shipping_address.street")
}

func TestOrderValidateAcceptsCompleteOrder(t *testing.T) {
	o := Order{
		CustomerName:    "Ana Souza",
		CustomerEmail:   "ana@example.com",
		ShippingAddress: validAddress(),
		Items:           []OrderItem{{ProductID: 1, ProductName: "Lamp", Price: 10, Quantity: 1}},
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
	}

	assert.NoError(t, o.Validate())
}

func TestOrderFilterMatches(t *testing.T) {
	o := Order{
		OrderNumber:   "NS-20240601-ABCD1234",
		CustomerID:    7,
		CustomerName:  "Ana Souza",
		CustomerEmail: "ana@example.com",
		Status:        StatusConfirmed,
		Total:         150,
		CreatedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	cid := uint(7)
	min := 100.0
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	f := OrderFilter{
		Status:     StatusConfirmed,
		CustomerID: &cid,
		Search:     "ana",
		MinTotal:   &min,
		DateFrom:   &from,
	}
	assert.True(t, f.Matches(o))

	f.Search = "abcd1234"
	assert.True(t, f.Matches(o), "order number is searchable")

	f.Status = StatusShipped
	assert.False(t, f.Matches(o))
}

func TestPeriodStart(t *testing.T) {
	// Thursday
	now := time.Date(2024, 6, 13, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), PeriodStart(now, "day"))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), PeriodStart(now, "week"), "weeks start on Monday")
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), PeriodStart(now, "month"))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), PeriodStart(now, "year"))
	assert.Equal(t, PeriodStart(now, "month"), PeriodStart(now, "fortnight"), "unknown period defaults to month")
}

func TestPeriodStartWeekOnMonday(t *testing.T) {
	monday := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), PeriodStart(monday, "week"))

	sunday := time.Date(2024, 6, 16, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), PeriodStart(sunday, "week"))
}
