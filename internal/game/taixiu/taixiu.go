package taixiu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/pkg/lock"
)

// Betting errors.
var (
	ErrBetTooLarge = errors.New("bet exceeds the maximum")
	ErrAlreadyBet  = errors.New("already placed a bet this round")
)

// Notifier delivers the settlement report back to a chat.
type Notifier func(chatID int64, text string)

// Wager is one player's bet in an open window.
type Wager struct {
	UserID int64
	Name   string
	Choice Choice
	Amount decimal.Decimal
}

// round holds a channel's open wager set and the check-and-set slot for
// its settlement timer. Access only while holding the channel lock.
type round struct {
	wagers       map[int64]*Wager
	timerRunning bool
}

// Game coordinates per-channel betting windows. Wagers are debited at
// placement time through the ledger; after a fixed window one shared
// dice roll settles every wager in the window.
type Game struct {
	store  *ledger.Store
	locks  *lock.ChannelLock
	notify Notifier
	window time.Duration
	maxBet decimal.Decimal

	mu     sync.Mutex
	rounds map[int64]*round

	// injectable for tests
	roll  func() [3]int
	sleep func(time.Duration)
}

// New creates the tài-xỉu coordinator. Settlement reports are dropped
// until SetNotifier is called.
func New(store *ledger.Store, window time.Duration, maxBet decimal.Decimal) *Game {
	return &Game{
		store:  store,
		locks:  lock.NewChannelLock(),
		notify: func(int64, string) {},
		window: window,
		maxBet: maxBet,
		rounds: make(map[int64]*round),
		roll:   rollDice,
		sleep:  time.Sleep,
	}
}

// SetNotifier installs the settlement report sink. Must be called
// before the bot starts handling updates.
func (g *Game) SetNotifier(notify Notifier) {
	g.notify = notify
}

// Window returns the fixed betting window duration.
func (g *Game) Window() time.Duration {
	return g.window
}

// roundFor returns the channel's round, creating it lazily. The round
// registry has its own short-lived lock, distinct from the per-channel
// betting lock.
func (g *Game) roundFor(chatID int64) *round {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rounds[chatID]
	if !ok {
		r = &round{wagers: make(map[int64]*Wager)}
		g.rounds[chatID] = r
	}
	return r
}

// PlaceBet validates and records a wager. The stake is debited
// immediately, so a player cannot bet balance they no longer have and
// cannot withdraw a placed wager. The first wager of a window starts
// the settlement timer; the check-and-set happens under the channel
// lock so concurrent bets cannot start two timers.
func (g *Game) PlaceBet(chatID, userID int64, name string, choice Choice, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}
	if amount.GreaterThan(g.maxBet) {
		return ErrBetTooLarge
	}

	g.locks.Lock(chatID)
	defer g.locks.Unlock(chatID)

	r := g.roundFor(chatID)
	if _, ok := r.wagers[userID]; ok {
		return ErrAlreadyBet
	}

	// Debit at wager time, not at settlement.
	if err := g.store.Debit(userID, amount); err != nil {
		return err
	}

	r.wagers[userID] = &Wager{
		UserID: userID,
		Name:   name,
		Choice: choice,
		Amount: amount,
	}

	if !r.timerRunning {
		r.timerRunning = true
		go g.runWindow(chatID)
	}
	return nil
}

// runWindow announces the open window, waits it out (holding no lock),
// then settles. Any fault is recovered here so one channel's failure
// cannot take the process down or leave the timer slot claimed.
func (g *Game) runWindow(chatID int64) {
	drained := false
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Int64("chat_id", chatID).Interface("panic", rec).Msg("Settlement failed")
			if !drained {
				g.locks.Lock(chatID)
				g.roundFor(chatID).timerRunning = false
				g.locks.Unlock(chatID)
			}
			g.notify(chatID, "❌ Có lỗi xảy ra khi xử lý cược. Mình đã ghi log.")
		}
	}()

	g.notify(chatID, fmt.Sprintf("🎲 Lượt cược Tài Xỉu bắt đầu! Chốt kết quả sau %ds.",
		int(g.window.Seconds())))
	g.sleep(g.window)

	// Swap out the wager set and release the timer slot together, so
	// late wagers open a fresh window instead of joining this one.
	g.locks.Lock(chatID)
	r := g.roundFor(chatID)
	wagers := r.wagers
	r.wagers = make(map[int64]*Wager)
	r.timerRunning = false
	g.locks.Unlock(chatID)
	drained = true

	if len(wagers) == 0 {
		g.notify(chatID, "Không có ai cược lần này.")
		return
	}

	dice := g.roll()
	total := dice[0] + dice[1] + dice[2]
	g.notify(chatID, g.settleWagers(chatID, wagers, dice, total))
}

// settleWagers resolves every wager against the shared outcome and
// builds the aggregate report. Credits go through the per-player
// ledger mutation so they cannot race with other activity on that
// player.
func (g *Game) settleWagers(chatID int64, wagers map[int64]*Wager, dice [3]int, total int) string {
	ordered := make([]*Wager, 0, len(wagers))
	for _, w := range wagers {
		ordered = append(ordered, w)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].UserID < ordered[j].UserID })

	var b strings.Builder
	fmt.Fprintf(&b, "🎲 Kết quả: %d %d %d → Tổng %d\n", dice[0], dice[1], dice[2], total)
	for _, w := range ordered {
		payout := Payout(w.Choice, total, w.Amount)
		if payout.IsPositive() {
			if err := g.store.Credit(w.UserID, payout); err != nil {
				log.Error().Err(err).Int64("user_id", w.UserID).Msg("Failed to credit winnings")
				continue
			}
			fmt.Fprintf(&b, "✅ %s thắng! +%s xu\n", w.Name, payout.StringFixed(2))
		} else {
			fmt.Fprintf(&b, "❌ %s thua! -%s xu\n", w.Name, w.Amount.StringFixed(2))
		}
	}

	log.Info().
		Int64("chat_id", chatID).
		Ints("dice", dice[:]).
		Int("wagers", len(ordered)).
		Msg("Betting round settled")
	return b.String()
}

// PendingWagers returns how many wagers are open in a channel's
// current window.
func (g *Game) PendingWagers(chatID int64) int {
	g.locks.Lock(chatID)
	defer g.locks.Unlock(chatID)
	return len(g.roundFor(chatID).wagers)
}
