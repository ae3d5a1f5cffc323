package sortgame

import "strings"

// State is one full arrangement of tokens across the board. It is a
// plain comparable value: fixed-size arrays only, with every vacant slot
// held at NoToken, so two states describing the same arrangement compare
// equal and intern to the same identifier in the engine's arena.
//
// Geometry, as hallway columns left to right:
//
//	#############
//	#ba.c.d.e.fg#      b,a = left storage (back, front)
//	###0#1#2#3###      c,d,e = gaps 0..2 between adjacent rooms
//	  #0#1#2#3#        f,g = right storage (front, back)
//	  #########
//
// Room stacks are stored bottom-to-top: rooms[r][0] is the deepest slot.
type State struct {
	depth   uint8                         // slots per room in this layout (1..4)
	roomLen [NumRooms]uint8               // occupancy per room stack
	rooms   [NumRooms][MaxRoomDepth]Token // stacks, bottom-to-top; slots ≥ roomLen are NoToken
	gaps    [numGaps]Token                // hallway gaps between adjacent rooms
	storage [numSides][storageDepth]Token // end storage areas; [side][slot], slot 0 = front
}

// Goal returns the solved arrangement for the given room depth: every
// room filled to depth with its own token kind, hallway empty.
// Panics on a depth outside 1..MaxRoomDepth; callers obtain depths from
// Parse, which validates them.
func Goal(depth int) State {
	if depth < 1 || depth > MaxRoomDepth {
		panic(ErrBadDepth.Error())
	}
	var s State
	s.depth = uint8(depth)
	for r := 0; r < NumRooms; r++ {
		s.roomLen[r] = uint8(depth)
		for k := 0; k < depth; k++ {
			s.rooms[r][k] = RoomToken(r)
		}
	}

	return s
}

// Depth returns the number of slots per room in this layout.
func (s State) Depth() int { return int(s.depth) }

// Solved reports whether every token already sits in its home room.
func (s State) Solved() bool { return s == Goal(int(s.depth)) }

// topToken returns the topmost token of a room stack, or NoToken when
// the room is empty.
func (s State) topToken(room int) Token {
	if s.roomLen[room] == 0 {
		return NoToken
	}

	return s.rooms[room][s.roomLen[room]-1]
}

// roomSettled reports whether a room needs no further attention: it is
// empty or holds only its own token kind (possibly not yet full).
func (s State) roomSettled(room int) bool {
	want := RoomToken(room)
	for k := uint8(0); k < s.roomLen[room]; k++ {
		if s.rooms[room][k] != want {
			return false
		}
	}

	return true
}

// roomAccepts reports whether a token may enter its home room: the room
// has a free slot and contains no foreign tokens.
func (s State) roomAccepts(room int) bool {
	return s.roomLen[room] < s.depth && s.roomSettled(room)
}

// exitSteps is the number of steps a room's top token takes to climb to
// the slot just below the hallway. The extra step into the hallway is
// accounted for by each move's own formula.
func (s State) exitSteps(room int) int64 {
	return int64(s.depth - s.roomLen[room])
}

// enterSteps is the number of steps a token descends past the room's top
// free slot when entering; evaluated before the push.
func (s State) enterSteps(room int) int64 {
	return int64(s.depth - s.roomLen[room])
}

// popRoom returns a copy of s with the top token of the room removed.
// The vacated slot is zeroed so value equality stays structural.
func (s State) popRoom(room int) State {
	next := s
	next.roomLen[room]--
	next.rooms[room][next.roomLen[room]] = NoToken

	return next
}

// pushRoom returns a copy of s with tok stacked onto the room.
func (s State) pushRoom(room int, tok Token) State {
	next := s
	next.rooms[room][next.roomLen[room]] = tok
	next.roomLen[room]++

	return next
}

// gapsClear reports whether every hallway gap in the half-open index
// range [lo, hi) is free.
func (s State) gapsClear(lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if s.gaps[i] != NoToken {
			return false
		}
	}

	return true
}

// String renders the board in the classic ASCII layout, hallway on top,
// room stacks below (top row first).
func (s State) String() string {
	var b strings.Builder
	b.WriteString("#############\n")
	b.WriteString("#")
	b.WriteString(s.storage[0][1].String())
	b.WriteString(s.storage[0][0].String())
	for g := 0; g < numGaps; g++ {
		b.WriteString(".")
		b.WriteString(s.gaps[g].String())
	}
	b.WriteString(".")
	b.WriteString(s.storage[1][0].String())
	b.WriteString(s.storage[1][1].String())
	b.WriteString("#\n")
	for row := int(s.depth) - 1; row >= 0; row-- {
		if row == int(s.depth)-1 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for r := 0; r < NumRooms; r++ {
			if uint8(row) < s.roomLen[r] {
				b.WriteString(s.rooms[r][row].String())
			} else {
				b.WriteString(".")
			}
			b.WriteString("#")
		}
		if row == int(s.depth)-1 {
			b.WriteString("##")
		}
		b.WriteString("\n")
	}
	b.WriteString("  #########")

	return b.String()
}
