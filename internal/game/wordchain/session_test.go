package wordchain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-economy-bot/internal/service"
)

type fakeRewarder struct {
	words   map[int64]int
	bonuses map[int64]decimal.Decimal
	reward  service.WordReward
}

func newFakeRewarder() *fakeRewarder {
	return &fakeRewarder{
		words:   make(map[int64]int),
		bonuses: make(map[int64]decimal.Decimal),
		reward:  service.WordReward{WordCoins: decimal.NewFromInt(5), Level: 1},
	}
}

func (f *fakeRewarder) AwardWord(id int64) (service.WordReward, error) {
	f.words[id]++
	return f.reward, nil
}

func (f *fakeRewarder) AwardBonus(id int64, amount decimal.Decimal) error {
	f.bonuses[id] = f.bonuses[id].Add(amount)
	return nil
}

// forceOpening pins the session to a known opening word so tests do not
// depend on the random draw in Start.
func forceOpening(g *Game, word string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.used = map[string]bool{word: true}
	g.lastWord = word
	g.chained = false
}

// TestStartAndStop tests the session lifecycle transitions.
func TestStartAndStop(t *testing.T) {
	dict := NewDictionary([]string{"an ninh", "ninh bình"})
	g := NewGame(dict, newFakeRewarder(), decimal.NewFromInt(20))

	opening, err := g.Start()
	require.NoError(t, err)
	assert.True(t, dict.Contains(opening), "opening word %q must come from the dictionary", opening)
	assert.True(t, g.Active())

	_, err = g.Start()
	assert.ErrorIs(t, err, ErrGameActive)

	require.NoError(t, g.Stop())
	assert.False(t, g.Active())
	assert.ErrorIs(t, g.Stop(), ErrGameInactive)
}

// TestStartWithoutDictionary tests that a missing dictionary keeps the
// game unavailable.
func TestStartWithoutDictionary(t *testing.T) {
	g := NewGame(nil, newFakeRewarder(), decimal.NewFromInt(20))

	_, err := g.Start()
	assert.ErrorIs(t, err, ErrNoDictionary)
	assert.False(t, g.Available())
}

// TestSubmitIgnoredWhenInactive tests that text outside a session is
// silently ignored.
func TestSubmitIgnoredWhenInactive(t *testing.T) {
	dict := NewDictionary([]string{"an ninh"})
	g := NewGame(dict, newFakeRewarder(), decimal.NewFromInt(20))

	res, err := g.Submit(1, "an", "an ninh")
	require.NoError(t, err)
	assert.Nil(t, res)
}

// TestSubmitFirstWordSkipsSyllableCheck tests that the opening word
// does not constrain the first human submission.
func TestSubmitFirstWordSkipsSyllableCheck(t *testing.T) {
	dict := NewDictionary([]string{"mèo", "an ninh", "ninh bình", "bình yên"})
	g := NewGame(dict, newFakeRewarder(), decimal.NewFromInt(20))

	_, err := g.Start()
	require.NoError(t, err)
	forceOpening(g, "mèo")

	res, err := g.Submit(1, "an", "an ninh")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, VerdictAccepted, res.Verdict)
	assert.Equal(t, "ninh bình", res.BotWord)
}

// TestSubmitRejections tests the validation order once the chain has
// started: wrong syllable, reused word, unknown word.
func TestSubmitRejections(t *testing.T) {
	dict := NewDictionary([]string{"mèo", "an ninh", "ninh bình", "bình yên"})
	rewarder := newFakeRewarder()
	g := NewGame(dict, rewarder, decimal.NewFromInt(20))

	_, err := g.Start()
	require.NoError(t, err)
	forceOpening(g, "mèo")

	// Reusing the opening word: the syllable check is skipped before the
	// chain starts, so the reuse check fires.
	res, err := g.Submit(1, "an", "mèo")
	require.NoError(t, err)
	assert.Equal(t, VerdictUsed, res.Verdict)

	res, err = g.Submit(1, "an", "bình thường")
	require.NoError(t, err)
	assert.Equal(t, VerdictNotInDictionary, res.Verdict)

	res, err = g.Submit(1, "an", "an ninh")
	require.NoError(t, err)
	require.Equal(t, VerdictAccepted, res.Verdict)
	require.Equal(t, "ninh bình", res.BotWord)

	// Chain now requires a word starting with "bình"; the syllable check
	// precedes the reuse check.
	res, err = g.Submit(1, "an", "mèo")
	require.NoError(t, err)
	assert.Equal(t, VerdictWrongSyllable, res.Verdict)
	assert.Equal(t, "bình", res.RequiredSyllable)

	// Only the accepted submission was rewarded.
	assert.Equal(t, 1, rewarder.words[1])
}

// TestHumanWinsWhenBotHasNoContinuation tests a full session: the bot
// keeps answering until it has no unused continuation, at which point
// the last player wins the bonus and the session closes.
func TestHumanWinsWhenBotHasNoContinuation(t *testing.T) {
	dict := NewDictionary([]string{"mèo", "an ninh", "ninh bình", "bình yên"})
	rewarder := newFakeRewarder()
	winBonus := decimal.NewFromInt(20)
	g := NewGame(dict, rewarder, winBonus)

	_, err := g.Start()
	require.NoError(t, err)
	forceOpening(g, "mèo")

	res, err := g.Submit(7, "an", "an ninh")
	require.NoError(t, err)
	require.Equal(t, VerdictAccepted, res.Verdict)
	require.Equal(t, "ninh bình", res.BotWord)
	assert.False(t, res.HumanWon)

	res, err = g.Submit(7, "an", "bình yên")
	require.NoError(t, err)
	require.Equal(t, VerdictAccepted, res.Verdict)
	assert.True(t, res.HumanWon)
	assert.Empty(t, res.BotWord)
	assert.True(t, res.WinBonus.Equal(winBonus))
	assert.Equal(t, []Score{{Name: "an", Points: 2}}, res.FinalScores)

	assert.False(t, g.Active())
	assert.Equal(t, 2, rewarder.words[7])
	assert.True(t, rewarder.bonuses[7].Equal(winBonus))
}

// TestImmediateWinWithSparseDictionary tests a dictionary of isolated
// single-syllable words: the first correct submission wins at once
// because the bot never has a continuation.
func TestImmediateWinWithSparseDictionary(t *testing.T) {
	dict := NewDictionary([]string{"an", "nem", "mèo"})
	rewarder := newFakeRewarder()
	g := NewGame(dict, rewarder, decimal.NewFromInt(20))

	_, err := g.Start()
	require.NoError(t, err)
	forceOpening(g, "an")

	res, err := g.Submit(3, "binh", "nem")
	require.NoError(t, err)
	require.Equal(t, VerdictAccepted, res.Verdict)
	assert.True(t, res.HumanWon)
	assert.False(t, g.Active())
	assert.Equal(t, 1, rewarder.words[3])
	assert.True(t, rewarder.bonuses[3].Equal(decimal.NewFromInt(20)))
}

// TestScoresOrdering tests descending point order with ties broken by
// who scored first.
func TestScoresOrdering(t *testing.T) {
	dict := NewDictionary([]string{"an ninh"})
	g := NewGame(dict, newFakeRewarder(), decimal.NewFromInt(20))

	g.mu.Lock()
	g.scores = map[string]int{"an": 2, "binh": 2, "chi": 3}
	g.order = []string{"an", "binh", "chi"}
	g.mu.Unlock()

	want := []Score{
		{Name: "chi", Points: 3},
		{Name: "an", Points: 2},
		{Name: "binh", Points: 2},
	}
	assert.Equal(t, want, g.Scores())
}

// TestStartResetsSession tests that a new session clears scores, used
// words and the chain state.
func TestStartResetsSession(t *testing.T) {
	dict := NewDictionary([]string{"mèo", "an ninh", "ninh bình", "bình yên"})
	g := NewGame(dict, newFakeRewarder(), decimal.NewFromInt(20))

	_, err := g.Start()
	require.NoError(t, err)
	forceOpening(g, "mèo")

	_, err = g.Submit(1, "an", "an ninh")
	require.NoError(t, err)
	require.NoError(t, g.Stop())

	_, err = g.Start()
	require.NoError(t, err)

	assert.Empty(t, g.Scores())
	g.mu.Lock()
	defer g.mu.Unlock()
	assert.False(t, g.chained)
	assert.Len(t, g.used, 1) // only the new opening word
}
