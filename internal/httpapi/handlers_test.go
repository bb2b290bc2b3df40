package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/config"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/storage"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp error: %v", err)
	}

	mux := http.NewServeMux()
	New(storage.NewSolutionRepository(db), config.Default()).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postSolve(t *testing.T, srv *httptest.Server, body solveReq) (*http.Response, solveResp) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encoding request: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/solve", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST /api/solve: %v", err)
	}
	defer resp.Body.Close()

	var out solveResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, out
}

func uScrambleState(t *testing.T) string {
	t.Helper()
	c := cube.New()
	c.Apply(types.Move{Face: types.FaceU, Turn: types.TurnCW})
	return c.String()
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestSolveSolvedState(t *testing.T) {
	srv := testServer(t)

	resp, out := postSolve(t, srv, solveReq{State: cube.SolvedState})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, out.Error)
	}
	if len(out.Moves) != 0 {
		t.Errorf("moves = %v, want empty", out.Moves)
	}
	if out.SolutionID == "" {
		t.Error("solution was not persisted")
	}
}

func TestSolveUScramble(t *testing.T) {
	srv := testServer(t)

	resp, out := postSolve(t, srv, solveReq{State: uScrambleState(t), Method: "ida"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, out.Error)
	}
	if len(out.Moves) != 1 || out.Moves[0] != "U'" {
		t.Errorf("moves = %v, want [U']", out.Moves)
	}
	if out.NumMoves != 1 || out.SolutionString != "U'" {
		t.Errorf("num_moves/solution_string = %d/%q", out.NumMoves, out.SolutionString)
	}
	if out.NodesExplored < 1 {
		t.Errorf("nodes_explored = %d, want >= 1", out.NodesExplored)
	}
}

func TestSolveInvalidState(t *testing.T) {
	srv := testServer(t)

	resp, out := postSolve(t, srv, solveReq{State: "WWW"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if out.Error == "" {
		t.Error("expected an error message")
	}
}

func TestSolveUnknownMethod(t *testing.T) {
	srv := testServer(t)

	resp, _ := postSolve(t, srv, solveReq{State: cube.SolvedState, Method: "dfs"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSolveRequiresPost(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/solve")
	if err != nil {
		t.Fatalf("GET /api/solve: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestListAndLatest(t *testing.T) {
	srv := testServer(t)

	// Latest on an empty store is a 404.
	resp, err := http.Get(srv.URL + "/api/solutions/latest")
	if err != nil {
		t.Fatalf("GET latest: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("latest on empty store status = %d, want 404", resp.StatusCode)
	}

	if resp, out := postSolve(t, srv, solveReq{State: uScrambleState(t)}); resp.StatusCode != http.StatusOK {
		t.Fatalf("seeding solve failed: %d (%s)", resp.StatusCode, out.Error)
	}

	resp, err = http.Get(srv.URL + "/api/solutions")
	if err != nil {
		t.Fatalf("GET /api/solutions: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var list []solutionJSON
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}
	if list[0].Moves != "U'" {
		t.Errorf("stored moves = %q, want U'", list[0].Moves)
	}
	if list[0].Heuristic != "misplaced" {
		t.Errorf("stored heuristic = %q, want misplaced", list[0].Heuristic)
	}

	latest, err := http.Get(srv.URL + "/api/solutions/latest")
	if err != nil {
		t.Fatalf("GET latest: %v", err)
	}
	defer latest.Body.Close()
	if latest.StatusCode != http.StatusOK {
		t.Fatalf("latest status = %d, want 200", latest.StatusCode)
	}
	var last solutionJSON
	if err := json.NewDecoder(latest.Body).Decode(&last); err != nil {
		t.Fatalf("decoding latest: %v", err)
	}
	if last.SolutionID != list[0].SolutionID {
		t.Errorf("latest = %s, want %s", last.SolutionID, list[0].SolutionID)
	}
}

func TestListRejectsBadLimit(t *testing.T) {
	srv := testServer(t)

	for _, limit := range []string{"0", "-3", "ten"} {
		resp, err := http.Get(srv.URL + "/api/solutions?limit=" + limit)
		if err != nil {
			t.Fatalf("GET with limit %q: %v", limit, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("limit %q status = %d, want 400", limit, resp.StatusCode)
		}
	}
}
