package wordchain

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"telegram-economy-bot/internal/service"
)

// Session errors.
var (
	ErrNoDictionary = errors.New("dictionary unavailable")
	ErrGameActive   = errors.New("a game is already running")
	ErrGameInactive = errors.New("no game is running")
)

// Rewarder credits word-chain rewards through the ledger.
type Rewarder interface {
	AwardWord(id int64) (service.WordReward, error)
	AwardBonus(id int64, amount decimal.Decimal) error
}

// Verdict classifies a submission.
type Verdict int

const (
	// VerdictAccepted means the word was valid and scored.
	VerdictAccepted Verdict = iota
	// VerdictWrongSyllable means the leading syllable did not match.
	VerdictWrongSyllable
	// VerdictUsed means the word was already played this session.
	VerdictUsed
	// VerdictNotInDictionary means the word is unknown.
	VerdictNotInDictionary
)

// Score is one player's point tally.
type Score struct {
	Name   string
	Points int
}

// MoveResult reports the outcome of a submission.
type MoveResult struct {
	Verdict          Verdict
	RequiredSyllable string // set for VerdictWrongSyllable
	Word             string
	Reward           service.WordReward // set for VerdictAccepted
	BotWord          string             // the opponent's continuation, "" if the human won
	HumanWon         bool
	WinBonus         decimal.Decimal // set when HumanWon
	FinalScores      []Score         // set when HumanWon
}

// Game is the single global word-chain session. The whole bot runs one
// session at a time regardless of channel; a known limitation, not
// per-channel state that went missing.
type Game struct {
	dict     *Dictionary
	rewarder Rewarder
	winBonus decimal.Decimal

	mu       sync.Mutex
	active   bool
	chained  bool // a human word has been accepted this session
	lastWord string
	used     map[string]bool
	scores   map[string]int
	order    []string // first-scoring order, for tie-breaking
}

// NewGame creates the session. A nil or empty dictionary leaves the
// game permanently unavailable.
func NewGame(dict *Dictionary, rewarder Rewarder, winBonus decimal.Decimal) *Game {
	return &Game{
		dict:     dict,
		rewarder: rewarder,
		winBonus: winBonus,
		used:     make(map[string]bool),
		scores:   make(map[string]int),
	}
}

// Available reports whether the dictionary was loaded.
func (g *Game) Available() bool {
	return g.dict.Len() > 0
}

// Active reports whether a session is running.
func (g *Game) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Start opens a session: clears state, draws a random opening word and
// marks it used. The opponent has implicitly just moved, so the next
// turn belongs to a human.
func (g *Game) Start() (string, error) {
	if !g.Available() {
		return "", ErrNoDictionary
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return "", ErrGameActive
	}

	g.active = true
	g.chained = false
	g.used = make(map[string]bool)
	g.scores = make(map[string]int)
	g.order = g.order[:0]
	g.lastWord = g.dict.Random()
	g.used[g.lastWord] = true
	return g.lastWord, nil
}

// Stop ends the session. It only flips the active flag: a submission
// already past the active check may still complete, an accepted race.
func (g *Game) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return ErrGameInactive
	}
	g.active = false
	return nil
}

// Scores returns the current tally sorted by points descending, ties
// broken by the order players first scored.
func (g *Game) Scores() []Score {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sortedScoresLocked()
}

func (g *Game) sortedScoresLocked() []Score {
	out := make([]Score, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, Score{Name: name, Points: g.scores[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

// Submit processes one plain-text message while a session is active.
// A nil result means the message was ignored (inactive session or
// blank input). Validation order: syllable match, then reuse, then
// dictionary membership. On acceptance the word is scored and
// rewarded, and the opponent immediately answers or concedes.
func (g *Game) Submit(userID int64, name, phrase string) (*MoveResult, error) {
	word := normalize(phrase)
	if word == "" {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return nil, nil
	}

	// The opening word does not constrain the first submission; once a
	// human word has chained, every later submission must continue from
	// the current last word.
	if g.chained {
		required := LastSyllable(g.lastWord)
		if required != "" && FirstSyllable(word) != required {
			return &MoveResult{Verdict: VerdictWrongSyllable, RequiredSyllable: required, Word: word}, nil
		}
	}
	if g.used[word] {
		return &MoveResult{Verdict: VerdictUsed, Word: word}, nil
	}
	if !g.dict.Contains(word) {
		return &MoveResult{Verdict: VerdictNotInDictionary, Word: word}, nil
	}

	g.used[word] = true
	g.chained = true
	if _, seen := g.scores[name]; !seen {
		g.order = append(g.order, name)
	}
	g.scores[name]++
	g.lastWord = word

	reward, err := g.rewarder.AwardWord(userID)
	if err != nil {
		return nil, err
	}
	res := &MoveResult{Verdict: VerdictAccepted, Word: word, Reward: reward}

	// Opponent's turn: any unused continuation, uniformly at random.
	candidates := g.dict.Continuations(LastSyllable(word), g.used)
	if len(candidates) == 0 {
		if err := g.rewarder.AwardBonus(userID, g.winBonus); err != nil {
			return nil, err
		}
		g.active = false
		res.HumanWon = true
		res.WinBonus = g.winBonus
		res.FinalScores = g.sortedScoresLocked()
		return res, nil
	}

	botWord := candidates[rand.Intn(len(candidates))]
	g.used[botWord] = true
	g.lastWord = botWord
	res.BotWord = botWord
	return res, nil
}

func normalize(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}
