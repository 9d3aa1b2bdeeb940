package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerbid/marketplace/fee"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

func getTestEngine(t *testing.T) *fee.Engine {
	t.Helper()
	return fee.New(logging.NewTestLogger(), fee.NewDefaultConfig())
}

func TestSetCategoryCut(t *testing.T) {
	e := getTestEngine(t)

	assert.ErrorIs(t, e.SetCategoryCut(1, fee.MaxCut+1), types.ErrInvalidFeeCut)
	assert.EqualValues(t, 0, e.CategoryCut(1))

	require.NoError(t, e.SetCategoryCut(1, fee.MaxCut))
	assert.EqualValues(t, fee.MaxCut, e.CategoryCut(1))

	require.NoError(t, e.SetCategoryCut(1, 50000))
	assert.EqualValues(t, 50000, e.CategoryCut(1))
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name  string
		price uint64
		cut   uint64
		fee   uint64
		net   uint64
	}{
		{
			name:  "five percent",
			price: 1000000,
			cut:   50000,
			fee:   50000,
			net:   950000,
		},
		{
			name:  "maximum cut floors down",
			price: 999999,
			cut:   999999,
			fee:   999998,
			net:   1,
		},
		{
			name:  "small price floors to zero fee",
			price: 3,
			cut:   333333,
			fee:   0,
			net:   3,
		},
		{
			name:  "unset category takes nothing",
			price: 1000000,
			cut:   0,
			fee:   0,
			net:   1000000,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := getTestEngine(t)
			require.NoError(t, e.SetCategoryCut(7, tc.cut))

			feeAmount, net := e.Calculate(num.NewUint(tc.price), 7)
			assert.True(t, feeAmount.EQUint64(tc.fee), "fee: want %d got %s", tc.fee, feeAmount)
			assert.True(t, net.EQUint64(tc.net), "net: want %d got %s", tc.net, net)
		})
	}
}
