package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomerID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()
	placedAt := time.Now()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomerID, validRestaurantID, placedAt)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(validCustomerID))
		assert.True(t, o.RestaurantID().IsEqual(validRestaurantID))
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.TotalValue().IsZero())
		assert.Empty(t, o.Items())
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCustomerID, validRestaurantID, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(validID, invalidID, validRestaurantID, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("should fail with zero placement time", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomerID, validRestaurantID, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "placedAt")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidID, invalidID, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "placedAt")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("should append item and recompute total", func(t *testing.T) {
		o := newOrder(t)
		productA := kernel.NewUUID()

		require.NoError(t, o.AddItem(productA, 2, money(t, "10.00")))

		require.Len(t, o.Items(), 1)
		assert.True(t, o.TotalValue().IsEqual(money(t, "20.00")))

		productB := kernel.NewUUID()
		require.NoError(t, o.AddItem(productB, 1, money(t, "5.50")))

		require.Len(t, o.Items(), 2)
		assert.True(t, o.TotalValue().IsEqual(money(t, "25.50")))
	})

	t.Run("should keep items in insertion order", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AddItem(first, 1, money(t, "1.00")))
		require.NoError(t, o.AddItem(second, 1, money(t, "2.00")))

		items := o.Items()
		assert.True(t, items[0].ProductID().IsEqual(first))
		assert.True(t, items[1].ProductID().IsEqual(second))
	})

	t.Run("should snapshot the unit price at add time", func(t *testing.T) {
		o := newOrder(t)
		productID := kernel.NewUUID()

		require.NoError(t, o.AddItem(productID, 1, money(t, "10.00")))
		// A later add with a different price does not rewrite the first snapshot.
		require.NoError(t, o.AddItem(productID, 1, money(t, "12.00")))

		items := o.Items()
		assert.True(t, items[0].UnitPrice().IsEqual(money(t, "10.00")))
		assert.True(t, items[1].UnitPrice().IsEqual(money(t, "12.00")))
		assert.True(t, o.TotalValue().IsEqual(money(t, "22.00")))
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		o := newOrder(t)

		err := o.AddItem(kernel.NewUUID(), 0, money(t, "10.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
		assert.Empty(t, o.Items())
		assert.True(t, o.TotalValue().IsZero())
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		err := o.AddItem(kernel.NewUUID(), 1, money(t, "10.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail on delivered order and leave it unchanged", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.AddItem(kernel.NewUUID(), 1, money(t, "5.50"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Len(t, o.Items(), 1)
		assert.True(t, o.TotalValue().IsEqual(money(t, "20.00")))
	})

	t.Run("should not expose internal items for mutation", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "3.00")))

		items := o.Items()
		items[0] = order.LineItem{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm created order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.NoError(t, o.Confirm())

		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should fail on terminal order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, o.Cancel())

		err := o.Confirm()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should assign any valid status without transition checks", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())

		// Administrative override may leave a terminal state again.
		require.NoError(t, o.ChangeStatus(order.InDelivery))
		assert.Equal(t, order.InDelivery, o.Status())
	})

	t.Run("should reject invalid status value", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		err := o.ChangeStatus(order.Status(42))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Created, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel created order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel confirmed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, o.Confirm())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail on delivered order and leave it unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot cancel a delivered order")
		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.True(t, o.TotalValue().IsEqual(money(t, "20.00")))
	})

	t.Run("should fail on second cancellation", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "order already cancelled")
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("should return zero for nil items", func(t *testing.T) {
		assert.True(t, order.ComputeTotal(nil).IsZero())
	})

	t.Run("should return zero for empty items", func(t *testing.T) {
		assert.True(t, order.ComputeTotal([]order.LineItem{}).IsZero())
	})

	t.Run("should sum subtotals over all items", func(t *testing.T) {
		orderID := kernel.NewUUID()
		itemA, err := order.NewLineItem(orderID, kernel.NewUUID(), 2, money(t, "10.00"))
		require.NoError(t, err)
		itemB, err := order.NewLineItem(orderID, kernel.NewUUID(), 1, money(t, "5.50"))
		require.NoError(t, err)

		total := order.ComputeTotal([]order.LineItem{itemA, itemB})

		assert.True(t, total.IsEqual(money(t, "25.50")))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order and recompute total from items", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.NewLineItem(id, kernel.NewUUID(), 3, money(t, "4.00"))
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{item}, order.Confirmed, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.True(t, o.TotalValue().IsEqual(money(t, "12.00")))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.Unknown, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should fail with invalid line item", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{{}}, order.Created, time.Now(),
		)

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full create-add-confirm-cancel scenario", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.TotalValue().IsZero())

		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "10.00")))
		assert.True(t, o.TotalValue().IsEqual(money(t, "20.00")))

		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "5.50")))
		assert.True(t, o.TotalValue().IsEqual(money(t, "25.50")))

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})
}
