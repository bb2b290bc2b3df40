// Package httpapi exposes the solvers and the solution store over a small
// JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/config"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/solver"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/storage"
)

// Handler serves the solver API backed by a solution repository.
type Handler struct {
	repo *storage.SolutionRepository
	cfg  config.Config
}

// New creates a handler. The config supplies solver defaults for requests
// that leave method or heuristic unset.
func New(repo *storage.SolutionRepository, cfg config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Register installs the API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/solutions", h.handleList)
	mux.HandleFunc("/api/solutions/latest", h.handleLatest)
	mux.HandleFunc("/api/health", h.handleHealth)
}

type solveReq struct {
	State     string `json:"state"`
	Method    string `json:"method,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type solveResp struct {
	SolutionID     string   `json:"solution_id,omitempty"`
	Moves          []string `json:"moves"`
	NumMoves       int      `json:"num_moves"`
	NodesExplored  int      `json:"nodes_explored"`
	SolutionString string   `json:"solution_string"`
	DurationMs     int64    `json:"duration_ms"`
	Error          string   `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}

	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}

	c, err := cube.Parse(req.State)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}

	method := req.Method
	if method == "" {
		method = h.cfg.Method
	}
	heuristic := req.Heuristic
	if heuristic == "" {
		heuristic = h.cfg.Heuristic
	}

	s, err := solver.Select(method, heuristic, h.cfg.TwoPhaseCommand, h.cfg.TwoPhaseFallback)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}

	start := time.Now()
	moves, nodes, err := s.Solve(c)
	elapsed := time.Since(start)

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrDepthExceeded) || errors.Is(err, solver.ErrNoSolution) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, solveResp{Error: err.Error()})
		return
	}

	resp := solveResp{
		Moves:          moves,
		NumMoves:       len(moves),
		NodesExplored:  nodes,
		SolutionString: strings.Join(moves, " "),
		DurationMs:     elapsed.Milliseconds(),
	}

	if h.repo != nil {
		heuristicUsed := ""
		if method == "ida" {
			heuristicUsed = heuristic
		}
		id, err := h.repo.Create(req.State, method, heuristicUsed, resp.SolutionString,
			len(moves), nodes, elapsed.Milliseconds())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
			return
		}
		resp.SolutionID = id
	}

	writeJSON(w, http.StatusOK, resp)
}

type solutionJSON struct {
	SolutionID    string    `json:"solution_id"`
	CreatedAt     time.Time `json:"created_at"`
	State         string    `json:"state"`
	Method        string    `json:"method"`
	Heuristic     string    `json:"heuristic,omitempty"`
	Moves         string    `json:"moves"`
	NumMoves      int       `json:"num_moves"`
	NodesExplored int       `json:"nodes_explored"`
	DurationMs    int64     `json:"duration_ms"`
}

func toSolutionJSON(s storage.Solution) solutionJSON {
	out := solutionJSON{
		SolutionID:    s.SolutionID,
		CreatedAt:     s.CreatedAt,
		State:         s.State,
		Method:        s.Method,
		Moves:         s.Moves,
		NumMoves:      s.NumMoves,
		NodesExplored: s.NodesExplored,
		DurationMs:    s.DurationMs,
	}
	if s.Heuristic != nil {
		out.Heuristic = *s.Heuristic
	}
	return out
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	solutions, err := h.repo.List(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := make([]solutionJSON, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, toSolutionJSON(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	s, err := h.repo.GetLast()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no solutions recorded"})
		return
	}
	writeJSON(w, http.StatusOK, toSolutionJSON(*s))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
