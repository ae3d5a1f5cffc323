package sortgame

import "github.com/katalvlaran/bestfirst/search"

// Moves enumerates every legal single-token move out of s, each costed
// by steps-taken × the token's per-step weight. This is the transition
// function of the puzzle's state space; the engine calls it lazily, only
// when s is popped as the current cheapest candidate.
//
// Move families (all movement is through the hallway; tokens never jump):
//
//  1. room → end storage area (front slot, and the back slot behind it);
//  2. room → hallway gap;
//  3. hallway gap → the token's home room;
//  4. storage slot → the token's home room.
//
// A room whose stack holds only its own token kind is settled and never
// disturbed; a home room accepts a token only while it is free of
// foreign tokens; every hallway gap on the way must be empty.
//
// Step accounting: leaving a room costs exitSteps vertical steps plus
// one step into the hallway; crossing the span between two adjacent
// room entrances costs two steps; entering a room costs one step off
// the hallway plus enterSteps down; the back storage slot costs one
// step beyond the front.
func (s State) Moves() []search.Edge[State] {
	moves := make([]search.Edge[State], 0, 28)

	// Families 1 and 2: pull the top token out of every unsettled room.
	for room := 0; room < NumRooms; room++ {
		if s.roomSettled(room) {
			continue
		}
		tok := s.topToken(room)
		out := s.exitSteps(room) + 1 // up the stack and into the hallway

		// 1a) Into the left storage area: the front slot needs every gap
		//     left of the room free; the back slot additionally needs the
		//     front slot free and costs one more step.
		if s.storage[0][0] == NoToken && s.gapsClear(0, room) {
			front := s.popRoom(room)
			front.storage[0][0] = tok
			moves = append(moves, search.Edge[State]{
				Cost: (out + 1 + 2*int64(room)) * tok.StepCost(),
				To:   front,
			})
			if s.storage[0][1] == NoToken {
				back := s.popRoom(room)
				back.storage[0][1] = tok
				moves = append(moves, search.Edge[State]{
					Cost: (out + 2 + 2*int64(room)) * tok.StepCost(),
					To:   back,
				})
			}
		}

		// 1b) Into the right storage area, mirrored.
		if s.storage[1][0] == NoToken && s.gapsClear(room, numGaps) {
			front := s.popRoom(room)
			front.storage[1][0] = tok
			moves = append(moves, search.Edge[State]{
				Cost: (out + 1 + 2*int64(NumRooms-1-room)) * tok.StepCost(),
				To:   front,
			})
			if s.storage[1][1] == NoToken {
				back := s.popRoom(room)
				back.storage[1][1] = tok
				moves = append(moves, search.Edge[State]{
					Cost: (out + 2 + 2*int64(NumRooms-1-room)) * tok.StepCost(),
					To:   back,
				})
			}
		}

		// 2) Into a hallway gap. The inclusive gap range between the room
		//    and the target must be fully free (the target gap included).
		for gap := 0; gap < numGaps; gap++ {
			var lo, hi int // inclusive range of gaps crossed, target included
			if gap < room {
				lo, hi = gap, room-1
			} else {
				lo, hi = room, gap
			}
			if !s.gapsClear(lo, hi+1) {
				continue
			}
			span := int64(hi - lo + 1)
			next := s.popRoom(room)
			next.gaps[gap] = tok
			moves = append(moves, search.Edge[State]{
				Cost: (s.exitSteps(room) + 2*span) * tok.StepCost(),
				To:   next,
			})
		}
	}

	// Family 3: a token standing in a gap enters its home room.
	for gap := 0; gap < numGaps; gap++ {
		tok := s.gaps[gap]
		if tok == NoToken {
			continue
		}
		home := tok.HomeRoom()
		if !s.roomAccepts(home) {
			continue
		}
		var lo, hi int // half-open range of gaps crossed, source excluded
		if home <= gap {
			lo, hi = home, gap
		} else {
			lo, hi = gap+1, home
		}
		if !s.gapsClear(lo, hi) {
			continue
		}
		span := int64(hi - lo)
		next := s
		next.gaps[gap] = NoToken
		next = next.pushRoom(home, tok)
		moves = append(moves, search.Edge[State]{
			Cost: (1 + 2*span + s.enterSteps(home)) * tok.StepCost(),
			To:   next,
		})
	}

	// Family 4: a stored token enters its home room. The back slot is
	// blocked while the front slot is occupied.
	for side := 0; side < numSides; side++ {
		for slot := 0; slot < storageDepth; slot++ {
			tok := s.storage[side][slot]
			if tok == NoToken {
				continue
			}
			if slot == 1 && s.storage[side][0] != NoToken {
				continue
			}
			home := tok.HomeRoom()
			if !s.roomAccepts(home) {
				continue
			}
			var lo, hi int // half-open range of gaps between storage and room
			if side == 0 {
				lo, hi = 0, home
			} else {
				lo, hi = home, numGaps
			}
			if !s.gapsClear(lo, hi) {
				continue
			}
			span := int64(hi - lo)
			next := s
			next.storage[side][slot] = NoToken
			next = next.pushRoom(home, tok)
			moves = append(moves, search.Edge[State]{
				Cost: (1 + 2*span + s.enterSteps(home) + int64(slot)) * tok.StepCost(),
				To:   next,
			})
		}
	}

	return moves
}
