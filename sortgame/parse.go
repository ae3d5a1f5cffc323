package sortgame

import "fmt"

// Parse builds the initial State from the classic ASCII board, e.g.
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Every line containing token letters is a room row (top row first) and
// must hold exactly one token per room; the number of such rows is the
// room depth. The hallway is expected to be empty, as puzzle inputs
// always start with all tokens in rooms.
//
// Returns ErrBadBoard for a row with the wrong token count, ErrBadDepth
// for a depth outside 1..MaxRoomDepth, ErrBadToken for any character
// besides the board decoration (#, ., space) and the letters A–D.
func Parse(lines []string) (State, error) {
	// Collect room rows top to bottom.
	rows := make([][NumRooms]Token, 0, MaxRoomDepth)
	for _, line := range lines {
		var row [NumRooms]Token
		n := 0
		for _, c := range line {
			if c == '#' || c == '.' || c == ' ' {
				continue
			}
			if c < 'A' || c > 'D' {
				return State{}, fmt.Errorf("%w: %q in %q", ErrBadToken, c, line)
			}
			if n == NumRooms {
				return State{}, fmt.Errorf("%w: %q", ErrBadBoard, line)
			}
			row[n] = Token(c-'A') + TokenA
			n++
		}
		if n == 0 {
			continue
		}
		if n != NumRooms {
			return State{}, fmt.Errorf("%w: %q has %d", ErrBadBoard, line, n)
		}
		rows = append(rows, row)
	}
	if len(rows) < 1 || len(rows) > MaxRoomDepth {
		return State{}, fmt.Errorf("%w: %d room rows", ErrBadDepth, len(rows))
	}

	// Fill room stacks bottom-to-top: the last text row is the deepest slot.
	var s State
	s.depth = uint8(len(rows))
	for r := 0; r < NumRooms; r++ {
		for k := 0; k < len(rows); k++ {
			s.rooms[r][k] = rows[len(rows)-1-k][r]
		}
		s.roomLen[r] = s.depth
	}

	return s, nil
}

// deepenRows are the two fixed rows the extended puzzle folds into the
// middle of the classic board, top row first.
var deepenRows = [2][NumRooms]Token{
	{TokenD, TokenC, TokenB, TokenA},
	{TokenD, TokenB, TokenA, TokenC},
}

// Deepen converts a freshly parsed classic 2-deep board into the 4-deep
// extended layout by inserting the two fixed extra rows between each
// room's top and bottom token. Returns ErrBadDepth unless s is a full
// 2-deep board.
func (s State) Deepen() (State, error) {
	if s.depth != 2 {
		return State{}, fmt.Errorf("%w: Deepen requires depth 2, have %d", ErrBadDepth, s.depth)
	}
	for r := 0; r < NumRooms; r++ {
		if s.roomLen[r] != 2 {
			return State{}, fmt.Errorf("%w: Deepen requires full rooms", ErrBadDepth)
		}
	}

	var out State
	out.depth = MaxRoomDepth
	for r := 0; r < NumRooms; r++ {
		// Bottom-to-top: original bottom, inserted bottom row, inserted top
		// row, original top.
		out.rooms[r][0] = s.rooms[r][0]
		out.rooms[r][1] = deepenRows[1][r]
		out.rooms[r][2] = deepenRows[0][r]
		out.rooms[r][3] = s.rooms[r][1]
		out.roomLen[r] = MaxRoomDepth
	}

	return out, nil
}
