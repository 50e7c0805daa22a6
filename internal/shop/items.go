// Package shop provides the consumable item catalog.
package shop

import "github.com/shopspring/decimal"

// Item is a purchasable consumable. Eating or drinking one restores
// hunger/thirst up to the energy cap.
type Item struct {
	Name   string          // lowercase catalog key
	Emoji  string
	Price  decimal.Decimal // xu
	Hunger int             // hunger restored on consumption
	Thirst int             // thirst restored on consumption
}

// Items contains all purchasable items keyed by name.
var Items = map[string]Item{
	"nước":      {Name: "nước", Emoji: "🥤", Price: decimal.NewFromInt(10), Thirst: 1},
	"bánh mì":   {Name: "bánh mì", Emoji: "🍞", Price: decimal.NewFromInt(15), Hunger: 1},
	"pizza":     {Name: "pizza", Emoji: "🍕", Price: decimal.NewFromInt(25), Hunger: 2},
	"hamburger": {Name: "hamburger", Emoji: "🍔", Price: decimal.NewFromInt(30), Hunger: 2},
}

// displayOrder fixes the catalog listing order.
var displayOrder = []string{"nước", "bánh mì", "pizza", "hamburger"}

// GetAllItems returns the catalog in display order.
func GetAllItems() []Item {
	items := make([]Item, 0, len(displayOrder))
	for _, name := range displayOrder {
		if item, ok := Items[name]; ok {
			items = append(items, item)
		}
	}
	return items
}

// GetItem looks up an item by its lowercase name.
func GetItem(name string) (Item, bool) {
	item, ok := Items[name]
	return item, ok
}
