package store

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceTable(prices map[string]int64) PriceLookup {
	return func(id string) (decimal.Decimal, bool) {
		p, ok := prices[id]
		if !ok {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(p), true
	}
}

func TestCartAddAccumulates(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.Add("P001", 2))
	require.NoError(t, cart.Add("P002", 1))
	require.NoError(t, cart.Add("P001", 3))

	assert.Equal(t, 5, cart.Quantity("P001"))
	assert.Equal(t, 1, cart.Quantity("P002"))
	assert.Equal(t, 6, cart.Count())
}

func TestCartAddRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{name: "zero", qty: 0},
		{name: "negative", qty: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			err := cart.Add("P001", tt.qty)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func TestCartSetAndRemove(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add("P001", 2))

	cart.Set("P001", 7)
	assert.Equal(t, 7, cart.Quantity("P001"))

	cart.Set("P001", 0)
	assert.True(t, cart.IsEmpty())

	cart.Remove("P404")
	assert.True(t, cart.IsEmpty())
}

func TestCartTotal(t *testing.T) {
	prices := priceTable(map[string]int64{"1": 10, "2": 5})
	cart := NewCart()
	require.NoError(t, cart.Add("1", 2))
	require.NoError(t, cart.Add("2", 1))

	assert.True(t, decimal.NewFromInt(25).Equal(cart.Total(prices)))
}

func TestCartTotalSkipsMissingProducts(t *testing.T) {
	prices := priceTable(map[string]int64{"1": 10})
	cart := NewCart()
	require.NoError(t, cart.Add("1", 1))
	require.NoError(t, cart.Add("gone", 3))

	assert.True(t, decimal.NewFromInt(10).Equal(cart.Total(prices)))
}

func TestCartQuantitiesStayPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"P001", "P002", "P003"}
	cart := NewCart()

	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(3) {
		case 0:
			_ = cart.Add(id, rng.Intn(4)-1)
		case 1:
			cart.Set(id, rng.Intn(5)-2)
		default:
			cart.Remove(id)
		}

		for _, qty := range cart.Items {
			require.Greater(t, qty, 0)
		}
	}
}

func TestCartEntriesSorted(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add("P003", 1))
	require.NoError(t, cart.Add("P001", 1))

	entries := cart.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "P001", entries[0].ProductId)
	assert.Equal(t, "P003", entries[1].ProductId)
}

func TestSessionTakeFlashClears(t *testing.T) {
	s := NewSession("abc", testNow)
	s.Flash = Flash{PurchaseSuccessful: true, LastOrderId: "A1B2C3D4"}

	f := s.TakeFlash()
	assert.True(t, f.PurchaseSuccessful)
	assert.True(t, s.Flash.IsZero())
}

func TestSessionCloneIsIndependent(t *testing.T) {
	s := NewSession("abc", testNow)
	require.NoError(t, s.Cart.Add("P001", 1))

	c := s.Clone()
	require.NoError(t, c.Cart.Add("P001", 1))

	assert.Equal(t, 1, s.Cart.Quantity("P001"))
	assert.Equal(t, 2, c.Cart.Quantity("P001"))
}
