package handler

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/service"
)

// TransferHandler handles the peer-to-peer /give command.
type TransferHandler struct {
	transferService *service.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// HandleGive handles the /give command.
// Format: /give <số_tiền> as a reply to the recipient's message.
func (h *TransferHandler) HandleGive(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	msg := c.Message()
	if msg == nil || msg.ReplyTo == nil || msg.ReplyTo.Sender == nil {
		return c.Reply("⚠️ Cú pháp: trả lời tin nhắn của người nhận với /give <số_tiền>")
	}
	receiver := msg.ReplyTo.Sender

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("⚠️ Cú pháp: trả lời tin nhắn của người nhận với /give <số_tiền>")
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil || !amount.IsPositive() {
		return c.Reply("⚠️ Số tiền không hợp lệ.")
	}

	if err := h.transferService.Transfer(sender.ID, receiver.ID, amount); err != nil {
		switch {
		case errors.Is(err, ledger.ErrSelfTransfer):
			return c.Reply("❌ Bạn không thể chuyển xu cho chính mình.")
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return c.Reply("💸 Bạn không đủ xu để chuyển!")
		case errors.Is(err, ledger.ErrInvalidAmount):
			return c.Reply("⚠️ Số tiền không hợp lệ.")
		default:
			return c.Reply("❌ Chuyển xu thất bại, vui lòng thử lại sau.")
		}
	}

	return c.Reply(fmt.Sprintf("✅ %s đã chuyển %s xu cho %s 💰",
		displayName(sender), FormatXu(amount), displayName(receiver)))
}
