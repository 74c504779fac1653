package storage

import (
	"os"
	"path/filepath"
	"reflect"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsDataAndVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("platformer", 700); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("SchemaVersion() = %d, want %d", version, len(migrations))
	}
	if high, _ := store.HighScore("platformer"); high != 700 {
		t.Errorf("HighScore() after reopen = %d, want 700", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 50, 300, 200} {
		if _, err := store.SaveScore("platformer", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("platformer_endless", 9000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("platformer", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 300 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStageClears(t *testing.T) {
	store := openTestStore(t)

	clears := []StageClear{
		{GameID: "platformer", LevelID: "1-2", Score: 800, Steps: 2000},
		{GameID: "platformer", LevelID: "1-1", Score: 1200, Coins: 4, TimeLeft: 310, Steps: 1500},
		{GameID: "platformer", LevelID: "1-1", Score: 1200, Coins: 5, TimeLeft: 330, Steps: 1300},
		{GameID: "platformer", LevelID: "1-1", Score: 900, Steps: 1100},
		{GameID: "platformer_endless", LevelID: "3-3", Score: 50},
	}
	for _, c := range clears {
		if _, err := store.SaveStageClear(c); err != nil {
			t.Fatalf("SaveStageClear(%+v) failed: %v", c, err)
		}
	}

	ids, err := store.ClearedStages("platformer")
	if err != nil {
		t.Fatalf("ClearedStages() failed: %v", err)
	}
	if want := []string{"1-1", "1-2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ClearedStages() = %v, expected %v", ids, want)
	}

	best, err := store.BestClears("platformer")
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("BestClears() returned %d rows, expected 2", len(best))
	}
	if best[0].LevelID != "1-1" || best[0].Score != 1200 || best[0].Steps != 1300 || best[0].Coins != 5 {
		t.Errorf("best 1-1 clear = %+v, expected score 1200 in 1300 steps", best[0])
	}
	if best[1].LevelID != "1-2" || best[1].Score != 800 {
		t.Errorf("best 1-2 clear = %+v", best[1])
	}
}

func TestStoreSaveStageClearNeedsIDs(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveStageClear(StageClear{GameID: "platformer"}); err == nil {
		t.Error("SaveStageClear() without a level id succeeded")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveStageClear(StageClear{GameID: "platformer", LevelID: "1-1"})
	store.SaveScore("platformer_endless", 300)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if ids, _ := store.ClearedStages("platformer"); len(ids) != 0 {
		t.Errorf("Expected no stage clears after clear, got %v", ids)
	}
	if scores, _ := store.TopScores("platformer_endless", 10); len(scores) != 1 {
		t.Error("Endless scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveStageClear(StageClear{GameID: "platformer", LevelID: "1-1"})

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.Clears != 1 {
		t.Errorf("GetGameStats() = %+v", stats)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
