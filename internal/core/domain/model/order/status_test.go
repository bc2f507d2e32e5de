package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{name: "pending is valid", status: order.Pending},
		{name: "shipped is valid", status: order.Shipped},
		{name: "delivered is valid", status: order.Delivered},
		{name: "cancelled is valid", status: order.Cancelled},
		{name: "unknown is invalid", status: order.Unknown, wantErr: true},
		{name: "out of range is invalid", status: order.Status(42), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "shipped", order.Shipped.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("pending can be accepted", func(t *testing.T) {
		next, err := order.Pending.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("non pending cannot be accepted", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Delivered, order.Cancelled} {
			_, err := status.Accept()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConflict)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("shipped can be completed", func(t *testing.T) {
		next, err := order.Shipped.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("pending cannot skip shipping", func(t *testing.T) {
		_, err := order.Pending.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("delivered cannot be completed again", func(t *testing.T) {
		_, err := order.Delivered.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("shipped cannot be cancelled", func(t *testing.T) {
		_, err := order.Shipped.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("terminal states cannot be cancelled", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := status.Cancel()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConflict)
		}
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		courier bool
		wantErr bool
	}{
		{name: "pending without courier", status: order.Pending, courier: false},
		{name: "pending with courier", status: order.Pending, courier: true, wantErr: true},
		{name: "shipped with courier", status: order.Shipped, courier: true},
		{name: "shipped without courier", status: order.Shipped, courier: false, wantErr: true},
		{name: "delivered with courier", status: order.Delivered, courier: true},
		{name: "delivered without courier", status: order.Delivered, courier: false, wantErr: true},
		{name: "cancelled without courier", status: order.Cancelled, courier: false},
		{name: "cancelled with courier", status: order.Cancelled, courier: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.ValidateCanHaveCourier(tc.courier)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
