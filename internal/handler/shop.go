package handler

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/service"
	"telegram-economy-bot/internal/shop"
)

// ShopHandler handles shop, inventory and consumption commands.
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// HandleShop handles the /shop command: lists the catalog.
func (h *ShopHandler) HandleShop(c tele.Context) error {
	var b strings.Builder
	b.WriteString("🛒 Cửa hàng\n")
	for _, item := range h.shopService.GetShopItems() {
		fmt.Fprintf(&b, "%s %s — 💰 %s xu\n", item.Emoji, item.Name, FormatXu(item.Price))
	}
	b.WriteString("Dùng /buy <tên món> để mua")
	return c.Reply(b.String())
}

// HandleBuy handles the /buy command. The item name may contain
// spaces, so all arguments are joined.
func (h *ShopHandler) HandleBuy(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	itemName := strings.ToLower(strings.TrimSpace(strings.Join(c.Args(), " ")))
	if itemName == "" {
		return c.Reply("⚠️ Cú pháp: /buy <tên món>")
	}

	item, err := h.shopService.Buy(sender.ID, itemName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			return c.Reply("❌ Món này không có trong cửa hàng.")
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return c.Reply("💸 Bạn không đủ xu.")
		default:
			return c.Reply("❌ Mua thất bại, vui lòng thử lại sau.")
		}
	}

	return c.Reply(fmt.Sprintf("✅ %s đã mua %s %s với giá %s xu!",
		displayName(sender), item.Emoji, item.Name, FormatXu(item.Price)))
}

// HandleBag handles the /bag command: lists the player's inventory and
// current hunger/thirst.
func (h *ShopHandler) HandleBag(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	view := h.shopService.Inventory(sender.ID)
	if len(view.Items) == 0 {
		return c.Reply("📦 Kho của bạn đang trống.")
	}

	names := make([]string, 0, len(view.Items))
	for name := range view.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "🎒 Kho đồ của %s\n", displayName(sender))
	for _, name := range names {
		emoji := "🪙"
		if item, ok := shop.GetItem(name); ok {
			emoji = item.Emoji
		}
		fmt.Fprintf(&b, "%s %s — số lượng: %d\n", emoji, name, view.Items[name])
	}
	fmt.Fprintf(&b, "💧 Khát: %d/5 | 🍖 Đói: %d/5", view.Thirst, view.Hunger)
	return c.Reply(b.String())
}

// HandleEat handles the /eat command: consumes one unit of an item.
func (h *ShopHandler) HandleEat(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	itemName := strings.ToLower(strings.TrimSpace(strings.Join(c.Args(), " ")))
	if itemName == "" {
		return c.Reply("⚠️ Cú pháp: /eat <tên món>")
	}

	res, err := h.shopService.Eat(sender.ID, itemName)
	if err != nil {
		if errors.Is(err, service.ErrItemNotHeld) {
			return c.Reply(fmt.Sprintf("❌ Bạn không có %s trong kho.", itemName))
		}
		return c.Reply("❌ Thao tác thất bại, vui lòng thử lại sau.")
	}

	return c.Reply(fmt.Sprintf("✅ %s đã ăn/uống %s. Đói: %d/5, Khát: %d/5",
		displayName(sender), itemName, res.Hunger, res.Thirst))
}
