// Package cube provides a 3x3 Rubik's cube model as a 54-facelet array
// together with the 18-move permutation engine.
//
// The state is a flat array of 54 color symbols. Index i belongs to face
// i/9; within a face the facelets are laid out row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Faces in order: Up (White), Left (Orange), Front (Green), Right (Red),
// Back (Blue), Down (Yellow).
package cube

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cube construction and mutation.
var (
	ErrInvalidLength     = errors.New("cube: state must be exactly 54 symbols")
	ErrInvalidSymbol     = errors.New("cube: state contains an invalid color symbol")
	ErrInvalidFaceLength = errors.New("cube: face block must be exactly 9 symbols")
)

// SolvedState is the canonical solved cube: each face uniform in its color,
// in face order U L F R B D.
const SolvedState = "WWWWWWWWW" + "OOOOOOOOO" + "GGGGGGGGG" + "RRRRRRRRR" + "BBBBBBBBB" + "YYYYYYYYY"

// Face indices into the 54-facelet array (each face is a 9-slot block).
const (
	UpFace = iota
	LeftFace
	FrontFace
	RightFace
	BackFace
	DownFace
)

// faceColors[i] is the color every facelet of face i has when solved.
const faceColors = "WOGRBY"

// Cube represents a 3x3 Rubik's cube as 54 facelet color symbols.
type Cube struct {
	state [54]byte
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	copy(c.state[:], SolvedState)
	return c
}

// Parse creates a cube from a 54-character facelet string.
// The string must contain only the symbols W, O, G, R, B, Y.
func Parse(state string) (*Cube, error) {
	if len(state) != 54 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(state))
	}
	for i := 0; i < len(state); i++ {
		if !validSymbol(state[i]) {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidSymbol, state[i], i)
		}
	}
	c := &Cube{}
	copy(c.state[:], state)
	return c, nil
}

func validSymbol(b byte) bool {
	return strings.IndexByte(faceColors, b) >= 0
}

// String returns the 54-character facelet string. This is the sole wire
// and persistence representation of a cube state.
func (c *Cube) String() string {
	return string(c.state[:])
}

// Key returns the state encoding used for visited-set deduplication.
func (c *Cube) Key() string {
	return string(c.state[:])
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.state = c.state
	return clone
}

// Equal reports whether two cubes have identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.state == other.state
}

// IsSolved returns true if the cube equals the solved state exactly.
func (c *Cube) IsSolved() bool {
	return string(c.state[:]) == SolvedState
}

// Face returns the 9-character block for face i.
func (c *Cube) Face(i int) string {
	return string(c.state[i*9 : i*9+9])
}

// SetFace replaces the 9-character block for face i.
func (c *Cube) SetFace(i int, block string) error {
	if len(block) != 9 {
		return fmt.Errorf("%w: got %d", ErrInvalidFaceLength, len(block))
	}
	copy(c.state[i*9:], block)
	return nil
}

// rotateFaceCW rotates the 9 facelets of face i 90 degrees clockwise.
// Adjacent faces are not touched.
func (c *Cube) rotateFaceCW(i int) {
	f := c.state[i*9 : i*9+9]
	// Corners: 0<-6<-8<-2<-0, edges: 1<-3<-7<-5<-1
	tmp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = tmp

	tmp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = tmp
}

// rotateFaceCCW rotates the 9 facelets of face i 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(i int) {
	c.rotateFaceCW(i)
	c.rotateFaceCW(i)
	c.rotateFaceCW(i)
}

// rotateFace180 rotates the 9 facelets of face i 180 degrees.
func (c *Cube) rotateFace180(i int) {
	c.rotateFaceCW(i)
	c.rotateFaceCW(i)
}
