package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewPlayer tests the starting record: empty pocket, level 1, full
// energy.
func TestNewPlayer(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := NewPlayer(now)

	assert.True(t, p.Balance.IsZero())
	assert.Equal(t, 0, p.Exp)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, EnergyMax, p.Hunger)
	assert.Equal(t, EnergyMax, p.Thirst)
	assert.Equal(t, now.Unix(), p.LastStatusTS)
	assert.Empty(t, p.Inventory)
}

// TestInventoryAddRemove tests quantity bookkeeping, including entry
// deletion at zero.
func TestInventoryAddRemove(t *testing.T) {
	p := NewPlayer(time.Now())

	p.AddItem("pizza")
	p.AddItem("pizza")
	assert.Equal(t, 2, p.Inventory["pizza"])

	assert.True(t, p.RemoveItem("pizza"))
	assert.Equal(t, 1, p.Inventory["pizza"])

	assert.True(t, p.RemoveItem("pizza"))
	_, ok := p.Inventory["pizza"]
	assert.False(t, ok, "entry must be deleted at zero quantity")

	assert.False(t, p.RemoveItem("pizza"))
	assert.False(t, p.RemoveItem("nước"))
}

// TestRemoveItemNilInventory tests that a record loaded without an
// inventory map does not panic.
func TestRemoveItemNilInventory(t *testing.T) {
	p := &Player{}
	assert.False(t, p.RemoveItem("pizza"))
	p.AddItem("pizza")
	assert.Equal(t, 1, p.Inventory["pizza"])
}
