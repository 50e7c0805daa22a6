package ledger

import (
	"time"

	"telegram-economy-bot/internal/model"
)

// daySeconds is the decay period for hunger and thirst.
const daySeconds = 86400

// ApplyDecay reduces hunger and thirst by one per whole elapsed day
// since the record's last status timestamp, flooring at zero. The
// timestamp advances only when at least one whole day has passed, so
// repeated calls within the same day are no-ops.
func ApplyDecay(p *model.Player, now time.Time) {
	days := (now.Unix() - p.LastStatusTS) / daySeconds
	if days < 1 {
		return
	}
	p.Hunger = clampFloor(p.Hunger - int(days))
	p.Thirst = clampFloor(p.Thirst - int(days))
	p.LastStatusTS = now.Unix()
}

func clampFloor(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
