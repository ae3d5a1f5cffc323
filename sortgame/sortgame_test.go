// Package sortgame_test validates board parsing, the legal-move
// enumeration and its exact cost arithmetic, and the minimal sorting
// cost on the canonical example board (12521 classic, 44169 extended).
package sortgame_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/search"
	"github.com/katalvlaran/bestfirst/sortgame"
)

// exampleBoard is the canonical starting arrangement.
var exampleBoard = []string{
	"#############",
	"#...........#",
	"###B#C#B#D###",
	"  #A#D#C#A#",
	"  #########",
}

// ------------------------------------------------------------------------
// 1. Tokens.
// ------------------------------------------------------------------------

func TestToken_WeightsAndHomes(t *testing.T) {
	require.Equal(t, int64(1), sortgame.TokenA.StepCost())
	require.Equal(t, int64(10), sortgame.TokenB.StepCost())
	require.Equal(t, int64(100), sortgame.TokenC.StepCost())
	require.Equal(t, int64(1000), sortgame.TokenD.StepCost())

	for room := 0; room < sortgame.NumRooms; room++ {
		require.Equal(t, room, sortgame.RoomToken(room).HomeRoom())
	}

	require.Equal(t, "A", sortgame.TokenA.String())
	require.Equal(t, ".", sortgame.NoToken.String())
}

// ------------------------------------------------------------------------
// 2. Parsing and rendering.
// ------------------------------------------------------------------------

func TestParse_Example(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)
	require.Equal(t, 2, s.Depth())
	require.False(t, s.Solved())

	// Rendering round-trips the parsed arrangement.
	require.Equal(t, strings.Join(exampleBoard, "\n"), s.String())
}

func TestParse_SolvedBoard(t *testing.T) {
	s, err := sortgame.Parse([]string{
		"#############",
		"#...........#",
		"###A#B#C#D###",
		"  #A#B#C#D#",
		"  #########",
	})
	require.NoError(t, err)
	require.True(t, s.Solved())
	require.Equal(t, sortgame.Goal(2), s)
}

func TestParse_Errors(t *testing.T) {
	// No room rows at all.
	_, err := sortgame.Parse([]string{"#############", "#...........#"})
	require.ErrorIs(t, err, sortgame.ErrBadDepth)

	// A row with too few tokens.
	_, err = sortgame.Parse([]string{"###B#C#B###", "  #A#D#C#A#"})
	require.ErrorIs(t, err, sortgame.ErrBadBoard)

	// A row with too many tokens.
	_, err = sortgame.Parse([]string{"###B#C#B#D#A###"})
	require.ErrorIs(t, err, sortgame.ErrBadBoard)

	// An unknown token letter.
	_, err = sortgame.Parse([]string{"###B#C#E#D###"})
	require.ErrorIs(t, err, sortgame.ErrBadToken)
}

func TestDeepen_Example(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	deep, err := s.Deepen()
	require.NoError(t, err)
	require.Equal(t, 4, deep.Depth())

	// Deepening splices the two fixed rows between top and bottom:
	//	###B#C#B#D###
	//	  #D#C#B#A#
	//	  #D#B#A#C#
	//	  #A#D#C#A#
	want, err := sortgame.Parse([]string{
		"###B#C#B#D###",
		"  #D#C#B#A#",
		"  #D#B#A#C#",
		"  #A#D#C#A#",
	})
	require.NoError(t, err)
	require.Equal(t, want, deep)
}

func TestDeepen_RejectsNonClassic(t *testing.T) {
	deep, err := sortgame.Parse([]string{
		"###B#C#B#D###",
		"  #D#C#B#A#",
		"  #D#B#A#C#",
		"  #A#D#C#A#",
	})
	require.NoError(t, err)

	_, err = deep.Deepen()
	require.ErrorIs(t, err, sortgame.ErrBadDepth)
}

// ------------------------------------------------------------------------
// 3. Move enumeration: counts, cost arithmetic, and invariants.
// ------------------------------------------------------------------------

func TestMoves_SolvedBoardHasNone(t *testing.T) {
	require.Empty(t, sortgame.Goal(2).Moves())
	require.Empty(t, sortgame.Goal(4).Moves())
}

func TestMoves_ExampleOpening(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	moves := s.Moves()
	require.NotEmpty(t, moves)

	// Every room is unsettled, so each of the four top tokens can reach:
	// the left storage front and back, the right storage front and back,
	// and each of the three gaps — 7 destinations per room.
	require.Len(t, moves, 4*7)

	// All opening moves leave a full room: 1 step up and out, so the
	// cheapest move for the B on room 0 is the adjacent gap 0 at cost
	// (0+1 up/out ... ) — concretely (0 + 2·1)·10 = 20.
	cheapest := moves[0].Cost
	for _, m := range moves {
		if m.Cost < cheapest {
			cheapest = m.Cost
		}
	}
	require.Equal(t, int64(20), cheapest)
}

func TestMoves_CostArithmetic(t *testing.T) {
	// Rooms 2 and 3 are already settled; only the swapped A and B move.
	//	###B#A#C#D###
	//	  #A#B#C#D#
	s, err := sortgame.Parse([]string{
		"###B#A#C#D###",
		"  #A#B#C#D#",
	})
	require.NoError(t, err)

	// The B on top of room 0 (weight 10, full room so 1 step up and out):
	// gap 0 costs (0+2·1)·10 = 20, gap 1 = 40, gap 2 = 60; left storage
	// front = (0+1+1+2·0)·10 = 20, back = 30; right storage front =
	// (0+1+1+2·3)·10 = 80, back = 90.
	bCosts := map[int64]int{}
	// The A on top of room 1 (weight 1): gap 0 and gap 1 cost 2 each,
	// gap 2 costs 4; left storage front = 4, back = 5; right storage
	// front = 6, back = 7.
	aCosts := map[int64]int{}
	for _, m := range s.Moves() {
		if m.Cost%10 == 0 {
			bCosts[m.Cost]++
		} else {
			aCosts[m.Cost]++
		}
	}

	require.Equal(t, map[int64]int{20: 2, 30: 1, 40: 1, 60: 1, 80: 1, 90: 1}, bCosts)
	require.Equal(t, map[int64]int{2: 2, 4: 2, 5: 1, 6: 1, 7: 1}, aCosts)
}

func TestMoves_SettledRoomNeverDisturbed(t *testing.T) {
	// Rooms 2 and 3 hold only their own kind; no move may pull a C or D
	// out of them, so no move cost carries a ×100 or ×1000 weight.
	s, err := sortgame.Parse([]string{
		"###B#A#C#D###",
		"  #A#B#C#D#",
	})
	require.NoError(t, err)

	moves := s.Moves()
	require.NotEmpty(t, moves)
	for _, m := range moves {
		require.Less(t, m.Cost, int64(100))
	}
}

func TestMoves_BlockedHallway(t *testing.T) {
	// A D parked in gap 1 splits the hallway: room 0's top token cannot
	// reach gap 1, gap 2 or the right storage area, and room 3's top
	// token cannot reach gap 0, gap 1 or the left storage area.
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	// Drive the board into that shape through a legal move: room 3's D to
	// gap 1 costs (0 + 2·2)·1000 = 4000.
	var blocked sortgame.State
	foundMove := false
	for _, m := range s.Moves() {
		if m.Cost == 4000 {
			blocked, foundMove = m.To, true
			break
		}
	}
	require.True(t, foundMove)

	// With the barrier up, each room's top token has exactly 3 moves left
	// (its near gap plus the near storage front and back); the D itself
	// is stuck because its home room still holds a foreign A. 4 rooms × 3.
	moves := blocked.Moves()
	require.Len(t, moves, 12)
	for _, m := range moves {
		// No move carries the D's ×1000 weight.
		require.Less(t, m.Cost, int64(1000))
	}
}

// ------------------------------------------------------------------------
// 4. Minimal sorting cost: canonical answers.
// ------------------------------------------------------------------------

func TestMinCost_AlreadySolved(t *testing.T) {
	cost, found, err := sortgame.MinCost(sortgame.Goal(2))
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, cost)
}

func TestMinCost_Example(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	cost, found, err := sortgame.MinCost(s)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(12521), cost)
}

func TestMinCost_ExampleExtended(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)
	deep, err := s.Deepen()
	require.NoError(t, err)

	cost, found, err := sortgame.MinCost(deep)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(44169), cost)
}

func TestMinCost_Deterministic(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	first, _, err := sortgame.MinCost(s)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, _, err := sortgame.MinCost(s)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMinCost_PathEndsSolved(t *testing.T) {
	s, err := sortgame.Parse(exampleBoard)
	require.NoError(t, err)

	res, err := search.Run(sortgame.Space(s), search.WithReturnPath[sortgame.State]())
	require.NoError(t, err)
	require.True(t, res.Found)

	// The path starts at the parsed board, ends solved, and its step
	// costs sum to the total.
	require.Equal(t, s, res.Path[0].State)
	require.True(t, res.Path[len(res.Path)-1].State.Solved())
	var sum int64
	for _, st := range res.Path {
		sum += st.Cost
	}
	require.Equal(t, res.Cost, sum)
}
