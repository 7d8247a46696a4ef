package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNet(t *testing.T) {
	discount := decimal.NewFromFloat(0.8)

	t.Run("full formula", func(t *testing.T) {
		net := Net(
			decimal.NewFromInt(100000), // worked pay
			decimal.NewFromInt(5000),   // consumption
			discount,
			decimal.NewFromInt(10000), // bonuses
			decimal.NewFromInt(2000),  // deductions
		)
		// 100000 - 5000*0.8 + 10000 - 2000 = 104000
		assert.Equal(t, "104000", net.String())
	})

	t.Run("no extras or consumption", func(t *testing.T) {
		net := Net(decimal.NewFromInt(80000), decimal.Zero, discount, decimal.Zero, decimal.Zero)
		assert.Equal(t, "80000", net.String())
	})

	t.Run("rounds to cents", func(t *testing.T) {
		net := Net(
			decimal.NewFromFloat(100.555),
			decimal.NewFromFloat(10.01),
			discount,
			decimal.Zero,
			decimal.Zero,
		)
		// 100.555 - 8.008 = 92.547
		assert.Equal(t, "92.55", net.String())
	})

	t.Run("can go negative", func(t *testing.T) {
		net := Net(decimal.NewFromInt(100), decimal.NewFromInt(500), discount, decimal.Zero, decimal.Zero)
		assert.True(t, net.IsNegative())
	})
}
