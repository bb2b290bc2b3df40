package cube

import (
	"testing"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

var baseFaces = []types.Face{
	types.FaceU, types.FaceD, types.FaceL,
	types.FaceR, types.FaceF, types.FaceB,
}

func TestUMoveExactState(t *testing.T) {
	c := New()
	c.Apply(types.Move{Face: types.FaceU, Turn: types.TurnCW})

	// U keeps the Up and Down faces uniform and cycles the top rows of
	// the side faces: Front gets Right's row, Left gets Front's, Back
	// gets Left's, Right gets Back's.
	want := "WWWWWWWWW" + "GGGOOOOOO" + "RRRGGGGGG" + "BBBRRRRRR" + "OOOBBBBBB" + "YYYYYYYYY"
	if got := c.String(); got != want {
		t.Errorf("U on solved cube:\n got %q\nwant %q", got, want)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, face := range baseFaces {
		c := New()
		c.Apply(types.Move{Face: face, Turn: types.TurnCW})
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s move", face)
		}
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, face := range baseFaces {
		c := New()
		m := types.Move{Face: face, Turn: types.TurnCW}
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestTwoHalfTurnsIsIdentity(t *testing.T) {
	for _, face := range baseFaces {
		c := New()
		m := types.Move{Face: face, Turn: types.Turn180}
		c.Apply(m)
		c.Apply(m)
		if !c.IsSolved() {
			t.Errorf("%s2 x 2 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	// Start from a non-trivial state so the identity is checked on more
	// than the solved cube.
	scramble := []types.Move{
		{Face: types.FaceU, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.Turn180},
		{Face: types.FaceF, Turn: types.TurnCCW},
	}

	for _, m := range types.AllMoves {
		c := New()
		c.ApplyMoves(scramble)
		before := c.String()

		c.Apply(m)
		c.Apply(m.Inverse())

		if got := c.String(); got != before {
			t.Errorf("%s then %s should be identity:\n got %q\nwant %q",
				m.Notation(), m.Inverse().Notation(), got, before)
		}
	}
}

func TestCommutatorHasFiniteOrder(t *testing.T) {
	// Every move sequence is a permutation of the 54 slots, so repeating
	// it must eventually return to the start. R U R' U' has order 24 in
	// this engine.
	commutator := []types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.TurnCCW},
		{Face: types.FaceU, Turn: types.TurnCCW},
	}

	c := New()
	order := 0
	for {
		c.ApplyMoves(commutator)
		order++
		if c.IsSolved() {
			break
		}
		if order > 1000 {
			t.Fatal("R U R' U' did not return to solved within 1000 repetitions")
		}
	}
	if order != 24 {
		t.Errorf("order of R U R' U' = %d, want 24", order)
	}
}

func TestCentersNeverMove(t *testing.T) {
	c := New()
	for _, m := range types.AllMoves {
		c.Apply(m)
	}
	for face := 0; face < 6; face++ {
		if got := c.Face(face)[4]; got != SolvedState[face*9+4] {
			t.Errorf("center of face %d moved to %q", face, got)
		}
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	for _, face := range baseFaces {
		a := New()
		a.Apply(types.Move{Face: face, Turn: types.Turn180})

		b := New()
		b.Apply(types.Move{Face: face, Turn: types.TurnCW})
		b.Apply(types.Move{Face: face, Turn: types.TurnCW})

		if !a.Equal(b) {
			t.Errorf("%s2 should equal %s %s", face, face, face)
		}
	}
}
