// Package service provides business logic over the ledger store.
package service

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/model"
)

// Account operation errors.
var (
	ErrInvalidBalance = errors.New("invalid balance: must be a non-negative number or inf")
)

// UnlimitedBalance is what the admin "inf" sentinel sets: a very large
// fixed amount, not a symbolic infinity.
var UnlimitedBalance = decimal.RequireFromString("999999999999999999999999")

// PlayerStatus is a read-only view of a player's consumable state.
type PlayerStatus struct {
	Balance decimal.Decimal
	Hunger  int
	Thirst  int
	Level   int
	Exp     int
}

// WordReward describes the outcome of one scoring word-chain action.
type WordReward struct {
	WordCoins  decimal.Decimal // per-word xu credited
	LevelBonus decimal.Decimal // level-up bonus credited, zero if none
	LeveledUp  bool
	Level      int
}

// AccountService handles balance queries, admin balance writes and the
// word-chain reward/leveling rule.
type AccountService struct {
	store       *ledger.Store
	coinPerWord decimal.Decimal
	levelBonus  decimal.Decimal
}

// NewAccountService creates an AccountService.
func NewAccountService(store *ledger.Store, coinPerWord, levelBonus decimal.Decimal) *AccountService {
	return &AccountService{
		store:       store,
		coinPerWord: coinPerWord,
		levelBonus:  levelBonus,
	}
}

// GetBalance returns the player's current balance, creating the
// account on first reference.
func (s *AccountService) GetBalance(id int64) decimal.Decimal {
	return s.store.Balance(id)
}

// GetStatus returns the player's current status with decay applied.
func (s *AccountService) GetStatus(id int64) PlayerStatus {
	var st PlayerStatus
	s.store.ViewPlayer(id, func(p *model.Player) {
		st = PlayerStatus{
			Balance: p.Balance,
			Hunger:  p.Hunger,
			Thirst:  p.Thirst,
			Level:   p.Level,
			Exp:     p.Exp,
		}
	})
	return st
}

// SetBalance sets a player's balance from an admin-supplied string.
// "inf" sets UnlimitedBalance; anything else must parse as a
// non-negative decimal.
func (s *AccountService) SetBalance(id int64, amountStr string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	if strings.EqualFold(strings.TrimSpace(amountStr), "inf") {
		amount = UnlimitedBalance
	} else {
		var err error
		amount, err = decimal.NewFromString(strings.TrimSpace(amountStr))
		if err != nil || amount.IsNegative() {
			return decimal.Zero, ErrInvalidBalance
		}
	}
	if err := s.store.SetBalance(id, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// AwardWord credits one scoring word: coin reward plus one experience
// point, applying the leveling rule (level up when exp reaches
// level*20, resetting exp and paying the level bonus) in the same
// atomic mutation.
func (s *AccountService) AwardWord(id int64) (WordReward, error) {
	var r WordReward
	err := s.store.WithPlayer(id, func(p *model.Player) error {
		p.Balance = p.Balance.Add(s.coinPerWord)
		r.WordCoins = s.coinPerWord
		r.LevelBonus = decimal.Zero
		p.Exp++
		if p.Exp >= p.Level*20 {
			p.Level++
			p.Exp = 0
			p.Balance = p.Balance.Add(s.levelBonus)
			r.LevelBonus = s.levelBonus
			r.LeveledUp = true
		}
		r.Level = p.Level
		return nil
	})
	return r, err
}

// AwardBonus credits a flat bonus (e.g. the word-chain victory prize).
func (s *AccountService) AwardBonus(id int64, amount decimal.Decimal) error {
	return s.store.Credit(id, amount)
}
