package cube

import "github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"

// edgeCycles holds, per face, the four 3-facelet strips on the neighboring
// faces that cycle when that face is turned clockwise. Indices are absolute
// positions in the 54-slot array. The cycle semantics are a<-d, d<-c, c<-b,
// b<-a, i.e. strip a receives strip d's facelets and so on around. The
// tables follow from the face order and row-major layout documented in
// this package.
var edgeCycles = [6][4][3]int{
	UpFace: {
		{18, 19, 20}, // F top row
		{9, 10, 11},  // L top row
		{36, 37, 38}, // B top row
		{27, 28, 29}, // R top row
	},
	DownFace: {
		{24, 25, 26}, // F bottom row
		{33, 34, 35}, // R bottom row
		{42, 43, 44}, // B bottom row
		{15, 16, 17}, // L bottom row
	},
	LeftFace: {
		{18, 21, 24}, // F left column
		{45, 48, 51}, // D left column
		{36, 39, 42}, // B left column
		{0, 3, 6},    // U left column
	},
	RightFace: {
		{20, 23, 26}, // F right column
		{2, 5, 8},    // U right column
		{38, 41, 44}, // B right column
		{47, 50, 53}, // D right column
	},
	FrontFace: {
		{6, 7, 8},    // U bottom row
		{33, 34, 35}, // R bottom strip
		{47, 46, 45}, // D top strip, reversed
		{17, 14, 11}, // L right column, reversed
	},
	BackFace: {
		{0, 3, 6},    // U left column
		{9, 10, 11},  // L top row
		{53, 50, 47}, // D bottom strip, reversed
		{33, 30, 27}, // R left column, reversed
	},
}

// moveFaces maps a notation face to its block index in the facelet array.
var moveFaces = map[types.Face]int{
	types.FaceU: UpFace,
	types.FaceD: DownFace,
	types.FaceL: LeftFace,
	types.FaceR: RightFace,
	types.FaceF: FrontFace,
	types.FaceB: BackFace,
}

// Apply applies a move to the cube in place. Prime and 180 variants are
// repeated applications of the clockwise base move, so move; move' is the
// identity by construction.
func (c *Cube) Apply(m types.Move) {
	face := moveFaces[m.Face]
	switch m.Turn {
	case types.TurnCW:
		c.moveCW(face)
	case types.TurnCCW:
		c.moveCW(face)
		c.moveCW(face)
		c.moveCW(face)
	case types.Turn180:
		c.moveCW(face)
		c.moveCW(face)
	}
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// moveCW applies the clockwise base move for a face: rotate the face's own
// 9 facelets, then cycle the four neighbor strips.
func (c *Cube) moveCW(face int) {
	c.rotateFaceCW(face)
	c.cycleStrips(edgeCycles[face])
}

// cycleStrips performs the 4-way strip cycle a<-d, d<-c, c<-b, b<-a
// over cy = [a b c d].
func (c *Cube) cycleStrips(cy [4][3]int) {
	var saved [3]byte
	for i := 0; i < 3; i++ {
		saved[i] = c.state[cy[0][i]]
	}
	for i := 0; i < 3; i++ {
		c.state[cy[0][i]] = c.state[cy[3][i]]
	}
	for i := 0; i < 3; i++ {
		c.state[cy[3][i]] = c.state[cy[2][i]]
	}
	for i := 0; i < 3; i++ {
		c.state[cy[2][i]] = c.state[cy[1][i]]
	}
	for i := 0; i < 3; i++ {
		c.state[cy[1][i]] = saved[i]
	}
}
