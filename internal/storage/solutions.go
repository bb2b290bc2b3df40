package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solution represents a stored solve result.
type Solution struct {
	SolutionID    string
	CreatedAt     time.Time
	State         string
	Method        string
	Heuristic     *string
	Moves         string
	NumMoves      int
	NodesExplored int
	DurationMs    int64
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores a solve result and returns its ID.
func (r *SolutionRepository) Create(state, method, heuristic, moves string, numMoves, nodesExplored int, durationMs int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var heuristicPtr *string
	if heuristic != "" {
		heuristicPtr = &heuristic
	}

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, created_at, state, method, heuristic, moves, num_moves, nodes_explored, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), state, method, heuristicPtr, moves, numMoves, nodesExplored, durationMs)

	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

// Get retrieves a solution by full ID or unique ID prefix, so the short
// ids printed by listings resolve. Returns nil when nothing matches and
// an error when the prefix is ambiguous.
func (r *SolutionRepository) Get(solutionID string) (*Solution, error) {
	if solutionID == "" {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT solution_id, created_at, state, method, heuristic, moves, num_moves, nodes_explored, duration_ms
		FROM solutions
		WHERE solution_id LIKE ? || '%'
		LIMIT 2
	`, solutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	defer rows.Close()

	var matches []Solution
	for rows.Next() {
		var s Solution
		var createdAtStr string

		err := rows.Scan(
			&s.SolutionID, &createdAtStr, &s.State, &s.Method,
			&s.Heuristic, &s.Moves, &s.NumMoves, &s.NodesExplored, &s.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		if s.CreatedAt, err = parseCreatedAt(createdAtStr); err != nil {
			return nil, err
		}
		matches = append(matches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("solution id %q is ambiguous", solutionID)
	}
}

// GetLast retrieves the most recent solution. Returns nil when the table
// is empty.
func (r *SolutionRepository) GetLast() (*Solution, error) {
	var solutionID string
	err := r.db.QueryRow(`
		SELECT solution_id FROM solutions
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solutionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solution: %w", err)
	}

	return r.Get(solutionID)
}

// List retrieves recent solutions, newest first.
func (r *SolutionRepository) List(limit int) ([]Solution, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, created_at, state, method, heuristic, moves, num_moves, nodes_explored, duration_ms
		FROM solutions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var s Solution
		var createdAtStr string

		err := rows.Scan(
			&s.SolutionID, &createdAtStr, &s.State, &s.Method,
			&s.Heuristic, &s.Moves, &s.NumMoves, &s.NodesExplored, &s.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		if s.CreatedAt, err = parseCreatedAt(createdAtStr); err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}

	return solutions, rows.Err()
}

// parseCreatedAt decodes the stored RFC3339 timestamp. Create writes this
// format, so a failure means the row was modified outside this package.
func parseCreatedAt(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at %q: %w", s, err)
	}
	return ts, nil
}

// Delete removes a solution.
func (r *SolutionRepository) Delete(solutionID string) error {
	_, err := r.db.Exec("DELETE FROM solutions WHERE solution_id = ?", solutionID)
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	return nil
}
