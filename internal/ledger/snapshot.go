package ledger

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"telegram-economy-bot/internal/model"
)

// Load reads the snapshot file into the store. A missing or corrupt
// file starts the ledger from an empty mapping; neither is fatal.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", s.path).Msg("No snapshot file, starting with empty ledger")
			return nil
		}
		return err
	}

	players := make(map[int64]*model.Player)
	if err := json.Unmarshal(data, &players); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Corrupt snapshot file, starting with empty ledger")
		return nil
	}

	s.mu.Lock()
	s.players = players
	s.mu.Unlock()

	log.Info().Int("players", len(players)).Str("path", s.path).Msg("Ledger snapshot loaded")
	return nil
}

// scheduleSnapshot signals the background writer. The channel is
// buffered with capacity one so a burst of mutations coalesces into a
// single pending write. Caller must hold s.mu; the in-memory state
// already reflects the change when the signal is sent.
func (s *Store) scheduleSnapshot() {
	select {
	case s.snapCh <- nil:
	default:
	}
}

// Flush forces a snapshot write and waits for it to complete. Used by
// tests and by shutdown, where write ordering actually matters.
func (s *Store) Flush() {
	ack := make(chan struct{})
	s.snapCh <- ack
	<-ack
}

// Close flushes pending state and stops the snapshot writer.
func (s *Store) Close() {
	s.Flush()
	close(s.snapCh)
	<-s.done
}

// snapshotLoop is the background writer: it serializes the player map
// under the lock but performs file I/O with the lock released.
func (s *Store) snapshotLoop() {
	defer close(s.done)
	for ack := range s.snapCh {
		s.writeSnapshot()
		if ack != nil {
			close(ack)
		}
	}
}

func (s *Store) writeSnapshot() {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.players, "", "  ")
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal ledger snapshot")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Failed to write ledger snapshot")
	}
}
