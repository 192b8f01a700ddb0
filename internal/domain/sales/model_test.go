package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
)

func validSale() *Sale {
	s := New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Aye Chan")
	s.AddLine("SHIRT", 2)
	return s
}

func TestNew_InitialState(t *testing.T) {
	s := validSale()

	assert.Equal(t, StatusProcessing, s.Status)
	assert.Equal(t, 1, s.Version)
	assert.False(t, s.ID.String() == "")
	assert.True(t, s.CODAmount.IsZero())
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"Parcel Processing", "Parcel Sent", "Delivered", "Returned"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), status)
	}

	_, err := ParseStatus("Shipped")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestAddLine_TrimsProductCode(t *testing.T) {
	s := validSale()
	s.AddLine("  MUG  ", 1)

	assert.Equal(t, "MUG", s.Lines[len(s.Lines)-1].ProductCode)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validSale().Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		s := validSale()
		s.CustomerName = "  "
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("no lines", func(t *testing.T) {
		s := New(time.Now(), "Aye Chan")
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("negative quantity", func(t *testing.T) {
		s := validSale()
		s.Lines[0].Quantity = -1

		err := s.Validate(ctx)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeDataFormat, appErr.Code)
	})

	t.Run("negative cod amount", func(t *testing.T) {
		s := validSale()
		s.CODAmount = types.MustMoney("-1")
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("unknown status", func(t *testing.T) {
		s := validSale()
		s.Status = Status("Lost")
		assert.Error(t, s.Validate(ctx))
	})
}
