package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/game/wordchain"
)

// WordChainHandler handles the nối-từ session commands and the plain
// text message observer.
type WordChainHandler struct {
	game *wordchain.Game
}

// NewWordChainHandler creates a new WordChainHandler.
func NewWordChainHandler(game *wordchain.Game) *WordChainHandler {
	return &WordChainHandler{game: game}
}

// HandleStart handles the /noitu command.
func (h *WordChainHandler) HandleStart(c tele.Context) error {
	opening, err := h.game.Start()
	if err != nil {
		switch {
		case errors.Is(err, wordchain.ErrNoDictionary):
			return c.Reply("⚠️ Danh sách từ không có. Không thể bắt đầu trò chơi.")
		case errors.Is(err, wordchain.ErrGameActive):
			return c.Reply("⚠️ Trò chơi đang diễn ra!")
		default:
			return c.Reply("❌ Không thể bắt đầu trò chơi.")
		}
	}
	return c.Reply(fmt.Sprintf("🎮 Trò chơi Nối từ bắt đầu! Bot đi trước: %s", opening))
}

// HandleStop handles the /stopgame command.
func (h *WordChainHandler) HandleStop(c tele.Context) error {
	if err := h.game.Stop(); err != nil {
		return c.Reply("⚠️ Không có trò chơi nào đang diễn ra.")
	}
	return c.Reply("⛔ Trò chơi đã dừng.")
}

// HandleScore handles the /score command.
func (h *WordChainHandler) HandleScore(c tele.Context) error {
	scores := h.game.Scores()
	if len(scores) == 0 {
		return c.Reply("Chưa có điểm số nào.")
	}
	return c.Reply(formatScores("🏆 Điểm hiện tại:", scores))
}

// HandleText observes every plain text message and feeds it to the
// word-chain session while one is active.
func (h *WordChainHandler) HandleText(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return nil
	}

	name := displayName(sender)
	res, err := h.game.Submit(sender.ID, name, text)
	if err != nil {
		log.Error().Err(err).Int64("user_id", sender.ID).Msg("Word-chain submission failed")
		return c.Reply("❌ Có lỗi xảy ra, vui lòng thử lại sau.")
	}
	if res == nil {
		return nil
	}

	switch res.Verdict {
	case wordchain.VerdictWrongSyllable:
		return c.Reply(fmt.Sprintf("🚫 %s, từ phải bắt đầu bằng '%s'!", name, res.RequiredSyllable))
	case wordchain.VerdictUsed:
		return c.Reply(fmt.Sprintf("⚠️ %s, từ này đã được sử dụng!", name))
	case wordchain.VerdictNotInDictionary:
		return c.Reply(fmt.Sprintf("❌ %s, '%s' không có trong từ điển.", name, res.Word))
	}

	accepted := fmt.Sprintf("✅ %s đúng: '%s' (+1 điểm, +%s xu)", name, res.Word, FormatXu(res.Reward.WordCoins))
	if res.Reward.LeveledUp {
		accepted += fmt.Sprintf("\n⬆️ %s lên cấp %d! +%s xu", name, res.Reward.Level, FormatXu(res.Reward.LevelBonus))
	}
	if err := c.Reply(accepted); err != nil {
		return err
	}

	if res.HumanWon {
		if err := c.Send(fmt.Sprintf("🏆 %s thắng! +%s xu", name, FormatXu(res.WinBonus))); err != nil {
			return err
		}
		return c.Send(formatScores("🏆 Điểm cuối cùng:", res.FinalScores))
	}
	return c.Send(fmt.Sprintf("🤖 Bot nối từ: %s", res.BotWord))
}

func formatScores(title string, scores []wordchain.Score) string {
	var b strings.Builder
	b.WriteString(title)
	for _, s := range scores {
		fmt.Fprintf(&b, "\n%s: %d điểm", s.Name, s.Points)
	}
	return b.String()
}
