package storage

import (
	"path/filepath"
	"testing"
)

func testRepo(t *testing.T) *SolutionRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp error: %v", err)
	}
	return NewSolutionRepository(db)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer db.Close()

	for i := 0; i < 3; i++ {
		if err := db.MigrateUp(); err != nil {
			t.Fatalf("MigrateUp run %d error: %v", i+1, err)
		}
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := testRepo(t)

	state := "WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY"
	id, err := repo.Create(state, "ida", "misplaced", "U' R2", 2, 150, 12)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty ID")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for existing solution")
	}
	if got.State != state {
		t.Errorf("State = %q, want %q", got.State, state)
	}
	if got.Method != "ida" {
		t.Errorf("Method = %q, want ida", got.Method)
	}
	if got.Heuristic == nil || *got.Heuristic != "misplaced" {
		t.Errorf("Heuristic = %v, want misplaced", got.Heuristic)
	}
	if got.Moves != "U' R2" || got.NumMoves != 2 {
		t.Errorf("Moves = %q (%d), want \"U' R2\" (2)", got.Moves, got.NumMoves)
	}
	if got.NodesExplored != 150 || got.DurationMs != 12 {
		t.Errorf("NodesExplored/DurationMs = %d/%d, want 150/12", got.NodesExplored, got.DurationMs)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not recorded")
	}
}

func TestCreateWithoutHeuristic(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Create("state", "bfs", "", "U", 1, 19, 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Heuristic != nil {
		t.Errorf("Heuristic = %q, want nil for bfs", *got.Heuristic)
	}
}

func TestGetByIDPrefix(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Create("state", "bfs", "", "U", 1, 19, 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Listings print the first 8 characters of the id.
	got, err := repo.Get(id[:8])
	if err != nil {
		t.Fatalf("Get by prefix error: %v", err)
	}
	if got == nil || got.SolutionID != id {
		t.Errorf("Get(%q) = %v, want solution %s", id[:8], got, id)
	}
}

func TestGetAmbiguousPrefix(t *testing.T) {
	repo := testRepo(t)

	for _, id := range []string{"aaaa1111", "aaaa2222"} {
		_, err := repo.db.Exec(`
			INSERT INTO solutions (solution_id, created_at, state, method, heuristic, moves, num_moves, nodes_explored, duration_ms)
			VALUES (?, '2026-08-25T10:00:00Z', 'state', 'bfs', NULL, 'U', 1, 1, 1)
		`, id)
		if err != nil {
			t.Fatalf("inserting %s: %v", id, err)
		}
	}

	if _, err := repo.Get("aaaa"); err == nil {
		t.Error("Get with a prefix matching two solutions should fail")
	}

	// A full id still resolves despite sharing the prefix.
	got, err := repo.Get("aaaa1111")
	if err != nil {
		t.Fatalf("Get by full id error: %v", err)
	}
	if got == nil || got.SolutionID != "aaaa1111" {
		t.Errorf("Get(aaaa1111) = %v", got)
	}
}

func TestGetEmptyID(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.Create("state", "bfs", "", "U", 1, 1, 1); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.Get("")
	if err != nil {
		t.Fatalf("Get(\"\") error: %v", err)
	}
	if got != nil {
		t.Errorf("Get(\"\") = %+v, want nil", got)
	}
}

func TestCorruptedTimestampIsAnError(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.db.Exec(`
		INSERT INTO solutions (solution_id, created_at, state, method, heuristic, moves, num_moves, nodes_explored, duration_ms)
		VALUES ('bad-row', 'not-a-timestamp', 'state', 'bfs', NULL, 'U', 1, 1, 1)
	`)
	if err != nil {
		t.Fatalf("inserting row: %v", err)
	}

	if _, err := repo.Get("bad-row"); err == nil {
		t.Error("Get of a row with a corrupted created_at should fail")
	}
	if _, err := repo.List(10); err == nil {
		t.Error("List over a row with a corrupted created_at should fail")
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

func TestGetLast(t *testing.T) {
	repo := testRepo(t)

	empty, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast on empty table error: %v", err)
	}
	if empty != nil {
		t.Errorf("GetLast on empty table = %+v, want nil", empty)
	}

	id, err := repo.Create("state", "ida", "misplaced", "U'", 1, 19, 2)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast error: %v", err)
	}
	if got == nil {
		t.Fatal("GetLast returned nil after insert")
	}
	if got.SolutionID != id {
		t.Errorf("GetLast = %s, want %s", got.SolutionID, id)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := testRepo(t)

	for _, moves := range []string{"U", "R", "F", "D"} {
		if _, err := repo.Create("state", "bfs", "", moves, 1, 1, 1); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	all, err := repo.List(10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(10) length = %d, want 4", len(all))
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatalf("List(2) error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) length = %d, want 2", len(limited))
	}
}

func TestDelete(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Create("state", "bfs", "", "U", 1, 1, 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get after delete error: %v", err)
	}
	if got != nil {
		t.Error("solution still present after Delete")
	}

	// Deleting a missing row is not an error.
	if err := repo.Delete(id); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}
