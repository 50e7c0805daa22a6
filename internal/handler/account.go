// Package handler provides Telegram bot command handlers.
package handler

import (
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/service"
)

// AccountHandler handles balance and status commands.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// HandleBalance handles the /balance command.
func (h *AccountHandler) HandleBalance(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	balance := h.accountService.GetBalance(sender.ID)
	return c.Reply(fmt.Sprintf("💰 Ví của %s: %s xu", displayName(sender), FormatXu(balance)))
}

// HandleStatus handles the /status command.
func (h *AccountHandler) HandleStatus(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	st := h.accountService.GetStatus(sender.ID)
	return c.Reply(fmt.Sprintf("💧 Khát: %d/5\n🍖 Đói: %d/5", st.Thirst, st.Hunger))
}

// HandleBankSet handles the admin-only /bankset command.
// Format: /bankset <số_tiền|inf> as a reply to the target's message,
// or /bankset <user_id> <số_tiền|inf>.
func (h *AccountHandler) HandleBankSet(c tele.Context) error {
	args := c.Args()

	var targetID int64
	var targetName, amountStr string

	switch {
	case c.Message() != nil && c.Message().ReplyTo != nil && c.Message().ReplyTo.Sender != nil && len(args) == 1:
		targetID = c.Message().ReplyTo.Sender.ID
		targetName = displayName(c.Message().ReplyTo.Sender)
		amountStr = args[0]
	case len(args) == 2:
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return c.Reply("⚠️ Cú pháp: /bankset <user_id> <số_tiền|inf> hoặc trả lời tin nhắn của người đó với /bankset <số_tiền|inf>")
		}
		targetID = id
		targetName = args[0]
		amountStr = args[1]
	default:
		return c.Reply("⚠️ Cú pháp: /bankset <user_id> <số_tiền|inf> hoặc trả lời tin nhắn của người đó với /bankset <số_tiền|inf>")
	}

	amount, err := h.accountService.SetBalance(targetID, amountStr)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBalance) {
			return c.Reply("⚠️ Số tiền không hợp lệ. Vui lòng nhập số dương hợp lệ hoặc inf.")
		}
		return c.Reply("❌ Thao tác thất bại, vui lòng thử lại sau.")
	}

	return c.Reply(fmt.Sprintf("✅ Đã đặt ví của %s thành %s xu. (Thao tác bởi admin %s)",
		targetName, FormatXu(amount), displayName(c.Sender())))
}
