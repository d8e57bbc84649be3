package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		input string
		want  OrderStatus
	}{
		{"PAID", StatusPaid},
		{"paid", StatusPaid},
		{" cancelled ", StatusCancelled},
		{"Created", StatusCreated},
	}
	for _, tc := range cases {
		got, err := ParseOrderStatus(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "SHIPPED", "done", "PAY"} {
		_, err := ParseOrderStatus(bad)
		require.Error(t, err, "input %q", bad)
		assert.Equal(t, KindBadRequest, KindOf(err))
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, StatusCreated.Terminal())
	assert.True(t, StatusPaid.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("order %d not found", 7)))
	assert.Equal(t, KindConflict, KindOf(Conflictf("sku taken")))
	assert.Equal(t, KindBadRequest, KindOf(BadRequestf("bad quantity")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
}
