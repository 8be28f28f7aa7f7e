package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/bug-smash/internal/game"
)

// EncodeState serializes a session for SaveState.
func EncodeState(st game.State) ([]byte, error) {
	data, err := msgpack.Marshal(&st)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a blob written by EncodeState.
func DecodeState(data []byte) (game.State, error) {
	var st game.State
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return game.State{}, fmt.Errorf("storage: cannot decode state: %w", err)
	}
	return st, nil
}

// Resume loads the session saved under slot into g.
// Returns ErrNoSavedState when there is nothing to resume. A blob that cannot
// be decoded or restored leaves g idle and returns the error.
func (s *Store) Resume(g *game.Game, slot string) error {
	data, _, err := s.LoadState(slot)
	if err != nil {
		return err
	}

	st, err := DecodeState(data)
	if err != nil {
		g.Reset()
		return err
	}

	if err := g.Restore(st); err != nil {
		return fmt.Errorf("storage: cannot resume %q: %w", slot, err)
	}
	return nil
}
