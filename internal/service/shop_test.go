package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-economy-bot/internal/ledger"
)

// TestBuy tests purchases: debit plus inventory credit, and the
// rejection paths.
func TestBuy(t *testing.T) {
	store := newTestStore(t)
	svc := NewShopService(store)

	require.NoError(t, store.SetBalance(1, decimal.NewFromInt(100)))

	item, err := svc.Buy(1, "pizza")
	require.NoError(t, err)
	assert.Equal(t, "pizza", item.Name)
	assert.True(t, store.Balance(1).Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 1, svc.Inventory(1).Items["pizza"])

	_, err = svc.Buy(1, "vàng")
	assert.ErrorIs(t, err, ErrItemNotFound)

	// 75 xu left; hamburger costs 30, buy twice then fail the third.
	_, err = svc.Buy(1, "hamburger")
	require.NoError(t, err)
	_, err = svc.Buy(1, "hamburger")
	require.NoError(t, err)
	_, err = svc.Buy(1, "hamburger")
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	assert.True(t, store.Balance(1).Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 2, svc.Inventory(1).Items["hamburger"])
}

// TestEat tests consumption: the item leaves the inventory and restores
// energy up to the cap.
func TestEat(t *testing.T) {
	store := newTestStore(t)
	svc := NewShopService(store)

	require.NoError(t, store.SetBalance(1, decimal.NewFromInt(1000)))
	_, err := svc.Buy(1, "pizza")
	require.NoError(t, err)
	_, err = svc.Buy(1, "nước")
	require.NoError(t, err)

	// Fresh players are already at full energy, so restoration clamps.
	res, err := svc.Eat(1, "pizza")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Hunger)
	assert.Equal(t, 5, res.Thirst)
	assert.Zero(t, svc.Inventory(1).Items["pizza"])

	// Eating what you do not hold fails.
	_, err = svc.Eat(1, "pizza")
	assert.ErrorIs(t, err, ErrItemNotHeld)
	_, err = svc.Eat(1, "bánh mì")
	assert.ErrorIs(t, err, ErrItemNotHeld)
}

// TestGetShopItems tests the fixed catalog ordering.
func TestGetShopItems(t *testing.T) {
	svc := NewShopService(newTestStore(t))

	items := svc.GetShopItems()
	require.Len(t, items, 4)
	assert.Equal(t, "nước", items[0].Name)
	assert.Equal(t, "bánh mì", items[1].Name)
	assert.Equal(t, "pizza", items[2].Name)
	assert.Equal(t, "hamburger", items[3].Name)
}
