// Package sortgame defines core types and sentinel errors for the
// token-sorting puzzle state space.
package sortgame

import "errors"

// Sentinel errors for board parsing and state construction.
var (
	// ErrBadBoard indicates a board line whose token count is not exactly
	// one token per room.
	ErrBadBoard = errors.New("sortgame: every room row must contain exactly one token per room")
	// ErrBadDepth indicates a room depth outside the supported 1..4 range,
	// or a Deepen call on a board that is not the classic 2-deep layout.
	ErrBadDepth = errors.New("sortgame: unsupported room depth")
	// ErrBadToken indicates an unknown token letter.
	ErrBadToken = errors.New("sortgame: token must be one of A, B, C, D")
)

// Board geometry. Four rooms sit under the hallway; the hallway offers
// three standing gaps between adjacent room entrances and two storage
// areas of two slots each at its ends. Tokens never stop directly above
// a room entrance.
const (
	// NumRooms is the number of rooms (one per token kind).
	NumRooms = 4
	// MaxRoomDepth is the deepest supported room (the extended layout).
	MaxRoomDepth = 4
	// numGaps is the number of hallway gaps between adjacent rooms.
	numGaps = NumRooms - 1
	// numSides is the number of end storage areas (left and right).
	numSides = 2
	// storageDepth is the number of slots per storage area; slot 0 is the
	// front (nearer the rooms), slot 1 the back (the dead end).
	storageDepth = 2
)

// Token identifies one of the four token kinds. The zero value NoToken
// marks an empty slot, so a zeroed State is an empty board.
type Token uint8

const (
	// NoToken marks an empty room slot, gap or storage slot.
	NoToken Token = iota
	// TokenA is the cheapest token (step weight 1), home room 0.
	TokenA
	// TokenB has step weight 10, home room 1.
	TokenB
	// TokenC has step weight 100, home room 2.
	TokenC
	// TokenD is the heaviest token (step weight 1000), home room 3.
	TokenD
)

// stepCosts maps a Token to the cost of one step of movement.
var stepCosts = [...]int64{0, 1, 10, 100, 1000}

// StepCost returns the cost this token pays per step of movement.
func (t Token) StepCost() int64 { return stepCosts[t] }

// HomeRoom returns the index of the room this token must end up in.
// Meaningless for NoToken.
func (t Token) HomeRoom() int { return int(t) - 1 }

// RoomToken returns the token kind that belongs in the given room.
func RoomToken(room int) Token { return Token(room + 1) }

// String renders the token letter, or "." for an empty slot.
func (t Token) String() string {
	if t == NoToken {
		return "."
	}

	return string(rune('A' + t - 1))
}
