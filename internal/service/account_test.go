package service

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"telegram-economy-bot/internal/ledger"
)

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.New(filepath.Join(t.TempDir(), "save.json"))
	t.Cleanup(s.Close)
	return s
}

// TestSetBalance tests the admin balance write, including the "inf"
// sentinel.
func TestSetBalance(t *testing.T) {
	svc := NewAccountService(newTestStore(t), decimal.NewFromInt(5), decimal.NewFromInt(50))

	tests := []struct {
		name    string
		input   string
		want    decimal.Decimal
		wantErr bool
	}{
		{"plain number", "1000", decimal.NewFromInt(1000), false},
		{"decimal number", "12.5", decimal.RequireFromString("12.5"), false},
		{"zero", "0", decimal.Zero, false},
		{"inf sentinel", "inf", UnlimitedBalance, false},
		{"inf uppercase", "INF", UnlimitedBalance, false},
		{"negative", "-5", decimal.Zero, true},
		{"garbage", "abc", decimal.Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SetBalance(1, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBalance)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "SetBalance = %s, want %s", got, tt.want)
			assert.True(t, svc.GetBalance(1).Equal(tt.want))
		})
	}
}

// TestAwardWordLeveling tests the word reward and the level-up rule:
// level N requires N*20 experience, experience resets on level-up and
// the level bonus is paid on top of the word coins.
func TestAwardWordLeveling(t *testing.T) {
	coinPerWord := decimal.NewFromInt(5)
	levelBonus := decimal.NewFromInt(50)
	svc := NewAccountService(newTestStore(t), coinPerWord, levelBonus)

	// 19 words: still level 1.
	for i := 0; i < 19; i++ {
		r, err := svc.AwardWord(7)
		require.NoError(t, err)
		assert.False(t, r.LeveledUp)
		assert.Equal(t, 1, r.Level)
	}

	st := svc.GetStatus(7)
	assert.Equal(t, 19, st.Exp)
	assert.Equal(t, 1, st.Level)
	assert.True(t, st.Balance.Equal(decimal.NewFromInt(95)))

	// The 20th word crosses the 1*20 threshold.
	r, err := svc.AwardWord(7)
	require.NoError(t, err)
	assert.True(t, r.LeveledUp)
	assert.Equal(t, 2, r.Level)
	assert.True(t, r.WordCoins.Equal(coinPerWord))
	assert.True(t, r.LevelBonus.Equal(levelBonus))

	st = svc.GetStatus(7)
	assert.Equal(t, 0, st.Exp, "experience resets on level-up")
	assert.Equal(t, 2, st.Level)
	assert.True(t, st.Balance.Equal(decimal.NewFromInt(150)), "balance = %s", st.Balance)

	// Level 2 now needs 40 experience.
	for i := 0; i < 39; i++ {
		r, err := svc.AwardWord(7)
		require.NoError(t, err)
		assert.False(t, r.LeveledUp, "word %d must not level up", i+1)
	}
	r, err = svc.AwardWord(7)
	require.NoError(t, err)
	assert.True(t, r.LeveledUp)
	assert.Equal(t, 3, r.Level)
}

// TestAwardWordBalanceProperty tests that any run of word awards pays
// exactly words*coin + levelUps*bonus.
func TestAwardWordBalanceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coin := decimal.NewFromInt(rapid.Int64Range(1, 100).Draw(t, "coin"))
		bonus := decimal.NewFromInt(rapid.Int64Range(1, 500).Draw(t, "bonus"))
		numWords := rapid.IntRange(1, 150).Draw(t, "numWords")

		store := ledger.New(filepath.Join(t.TempDir(), "save.json"))
		defer store.Close()
		svc := NewAccountService(store, coin, bonus)

		levelUps := 0
		for i := 0; i < numWords; i++ {
			r, err := svc.AwardWord(1)
			if err != nil {
				t.Fatalf("AwardWord failed: %v", err)
			}
			if r.LeveledUp {
				levelUps++
			}
		}

		want := coin.Mul(decimal.NewFromInt(int64(numWords))).
			Add(bonus.Mul(decimal.NewFromInt(int64(levelUps))))
		got := svc.GetBalance(1)
		if !got.Equal(want) {
			t.Fatalf("Balance after %d words and %d level-ups: expected %s, got %s",
				numWords, levelUps, want, got)
		}
	})
}

// TestAwardBonus tests the flat bonus credit.
func TestAwardBonus(t *testing.T) {
	svc := NewAccountService(newTestStore(t), decimal.NewFromInt(5), decimal.NewFromInt(50))

	require.NoError(t, svc.AwardBonus(1, decimal.NewFromInt(20)))
	assert.True(t, svc.GetBalance(1).Equal(decimal.NewFromInt(20)))
}
