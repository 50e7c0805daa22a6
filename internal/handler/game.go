package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/game/taixiu"
	"telegram-economy-bot/internal/ledger"
)

// GameHandler handles the tài-xỉu betting command.
type GameHandler struct {
	game *taixiu.Game
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(game *taixiu.Game) *GameHandler {
	return &GameHandler{game: game}
}

// HandleTaiXiu handles the /taixiu command.
// Format: /taixiu <tài|xỉu|chẵn|lẻ|3..18> <số_tiền>
func (h *GameHandler) HandleTaiXiu(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Reply("⚠️ Cú pháp: /taixiu <tài|xỉu|chẵn|lẻ|3..18> <số_tiền>")
	}

	choice, err := taixiu.ParseChoice(strings.ToLower(args[0]))
	if err != nil {
		return c.Reply("⚠️ Vui lòng chọn Tài/Xỉu/Chẵn/Lẻ hoặc số từ 3 đến 18.")
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil || !amount.IsPositive() {
		return c.Reply("⚠️ Vui lòng nhập một số hợp lệ.")
	}

	if err := h.game.PlaceBet(chat.ID, sender.ID, displayName(sender), choice, amount); err != nil {
		switch {
		case errors.Is(err, taixiu.ErrBetTooLarge):
			return c.Reply("⚠️ Số tiền cược vượt quá mức tối đa.")
		case errors.Is(err, taixiu.ErrAlreadyBet):
			return c.Reply("⚠️ Bạn đã cược trong lượt này rồi.")
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return c.Reply("⚠️ Bạn không đủ xu!")
		case errors.Is(err, ledger.ErrInvalidAmount):
			return c.Reply("⚠️ Vui lòng nhập một số hợp lệ.")
		default:
			return c.Reply("❌ Đặt cược thất bại, vui lòng thử lại sau.")
		}
	}

	return c.Reply(fmt.Sprintf("✅ %s đã cược %s xu vào %s trong %ds.",
		displayName(sender), FormatXu(amount), choice.Label(), int(h.game.Window().Seconds())))
}
