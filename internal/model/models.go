// Package model defines the data models for the economy bot.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnergyMax is the upper bound for hunger and thirst.
const EnergyMax = 5

// Player represents a user's economic and game-progress state.
// The full player map is what gets snapshotted to disk, so the JSON
// shape here is the on-disk format. Balance marshals as a quoted
// string (shopspring default), never as a binary float.
type Player struct {
	Balance      decimal.Decimal `json:"pocket"`
	Exp          int             `json:"exp"`
	Level        int             `json:"level"`
	Inventory    map[string]int  `json:"inventory"`
	Hunger       int             `json:"hunger"`
	Thirst       int             `json:"thirst"`
	LastStatusTS int64           `json:"last_status_ts"`
}

// NewPlayer returns a fresh player record: empty pocket, level 1,
// full hunger and thirst.
func NewPlayer(now time.Time) *Player {
	return &Player{
		Balance:      decimal.Zero,
		Exp:          0,
		Level:        1,
		Inventory:    make(map[string]int),
		Hunger:       EnergyMax,
		Thirst:       EnergyMax,
		LastStatusTS: now.Unix(),
	}
}

// AddItem increments the quantity of an inventory item.
func (p *Player) AddItem(name string) {
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	p.Inventory[name]++
}

// RemoveItem decrements an item's quantity, deleting the entry when it
// reaches zero. Returns false if the player does not hold the item.
func (p *Player) RemoveItem(name string) bool {
	qty, ok := p.Inventory[name]
	if !ok || qty <= 0 {
		return false
	}
	if qty == 1 {
		delete(p.Inventory, name)
	} else {
		p.Inventory[name] = qty - 1
	}
	return true
}
