package service

import (
	"errors"

	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/model"
	"telegram-economy-bot/internal/shop"
)

// Shop service errors.
var (
	ErrItemNotFound = errors.New("item not in the shop")
	ErrItemNotHeld  = errors.New("item not in inventory")
)

// InventoryView is a point-in-time copy of a player's inventory and
// consumable status.
type InventoryView struct {
	Items  map[string]int
	Hunger int
	Thirst int
}

// ConsumeResult reports the state after eating or drinking an item.
type ConsumeResult struct {
	Item   shop.Item
	Hunger int
	Thirst int
}

// ShopService handles purchases and consumption of catalog items.
type ShopService struct {
	store *ledger.Store
}

// NewShopService creates a ShopService.
func NewShopService(store *ledger.Store) *ShopService {
	return &ShopService{store: store}
}

// GetShopItems returns the catalog in display order.
func (s *ShopService) GetShopItems() []shop.Item {
	return shop.GetAllItems()
}

// Buy purchases one unit of the named item: balance is checked and
// debited and the inventory credited in a single ledger mutation.
func (s *ShopService) Buy(userID int64, itemName string) (shop.Item, error) {
	item, ok := shop.GetItem(itemName)
	if !ok {
		return shop.Item{}, ErrItemNotFound
	}
	err := s.store.WithPlayer(userID, func(p *model.Player) error {
		if p.Balance.LessThan(item.Price) {
			return ledger.ErrInsufficientBalance
		}
		p.Balance = p.Balance.Sub(item.Price)
		p.AddItem(item.Name)
		return nil
	})
	if err != nil {
		return shop.Item{}, err
	}
	return item, nil
}

// Eat consumes one unit of the named item from the player's inventory,
// restoring hunger/thirst up to the cap.
func (s *ShopService) Eat(userID int64, itemName string) (ConsumeResult, error) {
	item, ok := shop.GetItem(itemName)
	var res ConsumeResult
	err := s.store.WithPlayer(userID, func(p *model.Player) error {
		if !p.RemoveItem(itemName) {
			return ErrItemNotHeld
		}
		if ok {
			p.Hunger = clampEnergy(p.Hunger + item.Hunger)
			p.Thirst = clampEnergy(p.Thirst + item.Thirst)
		}
		res = ConsumeResult{Item: item, Hunger: p.Hunger, Thirst: p.Thirst}
		return nil
	})
	if err != nil {
		return ConsumeResult{}, err
	}
	return res, nil
}

// Inventory returns a copy of the player's inventory and status.
func (s *ShopService) Inventory(userID int64) InventoryView {
	var view InventoryView
	s.store.ViewPlayer(userID, func(p *model.Player) {
		items := make(map[string]int, len(p.Inventory))
		for name, qty := range p.Inventory {
			items[name] = qty
		}
		view = InventoryView{Items: items, Hunger: p.Hunger, Thirst: p.Thirst}
	})
	return view
}

func clampEnergy(v int) int {
	if v > model.EnergyMax {
		return model.EnergyMax
	}
	return v
}
