package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreRecord{RunID: "r1", Player: "ann", Score: 70, Level: 2}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected high score 70 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []ScoreRecord{
		{RunID: "r1", Player: "ann", Score: 100, Level: 2},
		{RunID: "r2", Player: "bob", Score: 50, Level: 1},
		{RunID: "r3", Player: "ann", Score: 640, Level: 4, Won: true},
		{RunID: "r4", Player: "bob", Score: 100, Level: 3},
	}
	for _, rec := range records {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []string{"r3", "r1", "r4", "r2"}
	for i, id := range want {
		if scores[i].RunID != id {
			t.Errorf("position %d: expected run %s, got %s", i, id, scores[i].RunID)
		}
	}

	top := scores[0]
	if top.Player != "ann" || top.Score != 640 || top.Level != 4 || !top.Won {
		t.Errorf("Unexpected top entry: %+v", top)
	}
	if scores[1].Won {
		t.Error("Expected run r1 to be recorded as not won")
	}
	if top.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore(ScoreRecord{RunID: "r", Player: "p", Score: i * 10, Level: 1}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 150 {
		t.Errorf("Expected top score 150, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreRecord{RunID: "a", Player: "ann", Score: 30, Level: 1})
	store.SaveScore(ScoreRecord{RunID: "b", Player: "bob", Score: 90, Level: 2})
	store.SaveScore(ScoreRecord{RunID: "c", Player: "ann", Score: 60, Level: 2})

	scores, err := store.PlayerScores("ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 60 || scores[1].Score != 30 {
		t.Errorf("Unexpected scores for ann: %+v", scores)
	}

	best, err := store.PlayerBest("ann")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 60 {
		t.Errorf("Expected ann's best to be 60, got %d", best)
	}

	best, err = store.PlayerBest("nobody")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreRecord{RunID: "a", Player: "ann", Score: 30, Level: 1})
	store.SaveScore(ScoreRecord{RunID: "b", Player: "bob", Score: 90, Level: 2})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", stats)
	}

	store.SaveScore(ScoreRecord{RunID: "a", Player: "ann", Score: 100, Level: 2})
	store.SaveScore(ScoreRecord{RunID: "b", Player: "bob", Score: 300, Level: 4, Won: true})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.BestLevel != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
}

func TestStoreSavedState(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.LoadState("alice")
	if !errors.Is(err, ErrNoSavedState) {
		t.Fatalf("Expected ErrNoSavedState for empty slot, got %v", err)
	}

	if err := store.SaveState("alice", []byte{1, 2, 3}); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}
	if err := store.SaveState("alice", []byte{4, 5}); err != nil {
		t.Fatalf("SaveState() overwrite failed: %v", err)
	}
	if err := store.SaveState("bob", []byte{9}); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	data, savedAt, err := store.LoadState("alice")
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if string(data) != string([]byte{4, 5}) {
		t.Errorf("Expected latest state, got %v", data)
	}
	if savedAt.IsZero() {
		t.Error("Expected a save time")
	}

	if err := store.DeleteState("alice"); err != nil {
		t.Fatalf("DeleteState() failed: %v", err)
	}
	if err := store.DeleteState("alice"); err != nil {
		t.Errorf("Deleting an empty slot should not fail: %v", err)
	}
	if _, _, err := store.LoadState("alice"); !errors.Is(err, ErrNoSavedState) {
		t.Errorf("Expected ErrNoSavedState after delete, got %v", err)
	}
	if _, _, err := store.LoadState("bob"); err != nil {
		t.Errorf("Other slots should survive: %v", err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.bugsmash/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".bugsmash", "test.db")); err != nil {
		t.Errorf("Expected database under the home directory: %v", err)
	}
}
