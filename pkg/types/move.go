// Package types contains shared type definitions for the cube solver.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMove is returned when a move token is outside the 18-move vocabulary.
var ErrUnknownMove = errors.New("types: unknown move")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// AllMoves lists the 18 canonical moves in the fixed expansion order used
// by the solvers: U U' U2 D D' D2 L L' L2 R R' R2 F F' F2 B B' B2.
var AllMoves = []Move{
	{FaceU, TurnCW}, {FaceU, TurnCCW}, {FaceU, Turn180},
	{FaceD, TurnCW}, {FaceD, TurnCCW}, {FaceD, Turn180},
	{FaceL, TurnCW}, {FaceL, TurnCCW}, {FaceL, Turn180},
	{FaceR, TurnCW}, {FaceR, TurnCCW}, {FaceR, Turn180},
	{FaceF, TurnCW}, {FaceF, TurnCCW}, {FaceF, Turn180},
	{FaceB, TurnCW}, {FaceB, TurnCCW}, {FaceB, Turn180},
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// ParseMove parses a single notation token into a Move.
func ParseMove(token string) (Move, error) {
	if len(token) < 1 || len(token) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
	}

	var face Face
	switch token[0] {
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'R':
		face = FaceR
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
	}

	turn := TurnCW
	if len(token) == 2 {
		switch token[1] {
		case '\'':
			turn = TurnCCW
		case '2':
			turn = Turn180
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseSequence parses a whitespace-separated sequence of notation tokens.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Notations converts a move sequence to its notation tokens.
func Notations(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}
