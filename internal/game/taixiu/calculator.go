// Package taixiu implements the tài-xỉu multiplayer dice betting game.
package taixiu

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/shopspring/decimal"
)

// ChoiceKind enumerates the bet vocabulary.
type ChoiceKind string

const (
	// ChoiceHigh (tài) wins on a dice sum of 11-17.
	ChoiceHigh ChoiceKind = "tài"
	// ChoiceLow (xỉu) wins on a dice sum of 4-10.
	ChoiceLow ChoiceKind = "xỉu"
	// ChoiceEven (chẵn) wins on an even sum.
	ChoiceEven ChoiceKind = "chẵn"
	// ChoiceOdd (lẻ) wins on an odd sum.
	ChoiceOdd ChoiceKind = "lẻ"
	// ChoiceExact wins only on an exact sum match, at 10x.
	ChoiceExact ChoiceKind = "exact"
)

// ErrInvalidChoice is returned for anything outside the bet vocabulary.
var ErrInvalidChoice = errors.New("invalid choice: tài/xỉu/chẵn/lẻ or a sum from 3 to 18")

// Choice is a validated bet selection.
type Choice struct {
	Kind ChoiceKind
	Sum  int // set only for ChoiceExact
}

// ParseChoice validates a raw bet selection. Accent-less spellings of
// tài and xỉu are accepted, as are exact sums "3" through "18".
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "tài", "tai":
		return Choice{Kind: ChoiceHigh}, nil
	case "xỉu", "xiu":
		return Choice{Kind: ChoiceLow}, nil
	case "chẵn":
		return Choice{Kind: ChoiceEven}, nil
	case "lẻ":
		return Choice{Kind: ChoiceOdd}, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 3 && n <= 18 {
		return Choice{Kind: ChoiceExact, Sum: n}, nil
	}
	return Choice{}, ErrInvalidChoice
}

// Wins reports whether the choice wins against the summed outcome.
func (c Choice) Wins(total int) bool {
	switch c.Kind {
	case ChoiceHigh:
		return total >= 11 && total <= 17
	case ChoiceLow:
		return total >= 4 && total <= 10
	case ChoiceEven:
		return total%2 == 0
	case ChoiceOdd:
		return total%2 == 1
	case ChoiceExact:
		return total == c.Sum
	default:
		return false
	}
}

// Multiplier returns the winnings multiplier: 10x for an exact-sum
// guess, 1x for everything else.
func (c Choice) Multiplier() decimal.Decimal {
	if c.Kind == ChoiceExact {
		return decimal.NewFromInt(10)
	}
	return decimal.NewFromInt(1)
}

// Payout returns the amount credited back for a settled wager: stake
// plus stake times the multiplier on a win, zero on a loss (the stake
// was already debited at wager time).
func Payout(c Choice, total int, stake decimal.Decimal) decimal.Decimal {
	if !c.Wins(total) {
		return decimal.Zero
	}
	return stake.Add(stake.Mul(c.Multiplier()))
}

// Label returns the display form of the choice.
func (c Choice) Label() string {
	if c.Kind == ChoiceExact {
		return strconv.Itoa(c.Sum)
	}
	return string(c.Kind)
}

// rollDice draws three independent uniform dice.
func rollDice() [3]int {
	return [3]int{
		rand.Intn(6) + 1,
		rand.Intn(6) + 1,
		rand.Intn(6) + 1,
	}
}
