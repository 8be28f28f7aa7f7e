package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bug-smash/internal/game"
)

const scoreQueueSize = 16

// Autosaver persists a game in the background. It saves the session after
// every game event and records a score when a run ends. The game goroutine
// only hands work over; nothing it calls blocks on the database.
type Autosaver struct {
	store  *Store
	slot   string
	player string
	logger *log.Logger

	mu      sync.Mutex
	runID   string
	pending *game.State // Latest unsaved session; older ones are superseded
	wake    chan struct{}
	scores  chan ScoreRecord

	done     chan struct{}
	doneOnce sync.Once
	wg       sync.WaitGroup
}

// NewAutosaver starts a saver writing sessions to slot and scores under player.
// A nil logger discards output.
func NewAutosaver(store *Store, slot, player string, logger *log.Logger) *Autosaver {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Autosaver{
		store:  store,
		slot:   slot,
		player: player,
		logger: logger.With("slot", slot),
		runID:  uuid.NewString(),
		wake:   make(chan struct{}, 1),
		scores: make(chan ScoreRecord, scoreQueueSize),
		done:   make(chan struct{}),
	}

	a.wg.Add(1)
	go a.run()
	return a
}

// Attach subscribes to g and returns a function that stops observing it.
func (a *Autosaver) Attach(g *game.Game) (detach func()) {
	return g.Subscribe(func(ev game.Event) {
		a.observe(g, ev)
	})
}

// RunID returns the id of the run currently being observed.
func (a *Autosaver) RunID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runID
}

func (a *Autosaver) observe(g *game.Game, ev game.Event) {
	switch ev.Kind {
	case game.EventNewGame:
		a.mu.Lock()
		a.runID = uuid.NewString()
		a.mu.Unlock()
	case game.EventGameOver, game.EventGameWon:
		a.recordScore(ScoreRecord{
			RunID:  a.RunID(),
			Player: a.player,
			Score:  ev.Score,
			Level:  ev.Level,
			Won:    ev.Kind == game.EventGameWon,
		})
	}

	st := g.State()
	a.mu.Lock()
	a.pending = &st
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
		// A save is already queued and will pick up the latest state
	}
}

func (a *Autosaver) recordScore(rec ScoreRecord) {
	select {
	case a.scores <- rec:
	default:
		a.logger.Warn("score queue full, dropping score", "run", rec.RunID, "score", rec.Score)
	}
}

func (a *Autosaver) run() {
	defer a.wg.Done()

	for {
		select {
		case rec := <-a.scores:
			a.saveScore(rec)
		case <-a.wake:
			a.flush()
		case <-a.done:
			a.drain()
			return
		}
	}
}

// drain writes everything still queued.
func (a *Autosaver) drain() {
	for {
		select {
		case rec := <-a.scores:
			a.saveScore(rec)
		default:
			a.flush()
			return
		}
	}
}

func (a *Autosaver) saveScore(rec ScoreRecord) {
	if _, err := a.store.SaveScore(rec); err != nil {
		a.logger.Error("could not record score", "run", rec.RunID, "error", err)
		return
	}
	a.logger.Debug("score recorded", "run", rec.RunID, "score", rec.Score, "won", rec.Won)
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	st := a.pending
	a.pending = nil
	a.mu.Unlock()

	if st == nil {
		return
	}

	data, err := EncodeState(*st)
	if err != nil {
		a.logger.Error("could not encode state", "error", err)
		return
	}
	if err := a.store.SaveState(a.slot, data); err != nil {
		a.logger.Error("could not save state", "error", err)
	}
}

// Close stops the saver after writing everything still queued.
// Safe to call more than once.
func (a *Autosaver) Close() {
	a.doneOnce.Do(func() {
		close(a.done)
	})
	a.wg.Wait()
}
