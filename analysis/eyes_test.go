package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
)

func board(simple []string) *goban.Board {
	b := goban.FromSimple(simple)
	b.UpdateChains(true)
	return b
}

func TestFindEyes_SingleNeighbour(t *testing.T) {
	assert := assert.New(t)

	// one corner eye for the wall at column 1
	// ⎢ X X . . . ⎥
	// ⎢ . X . . . ⎥   (only the bottom-left shown)
	b := board([]string{".X...", "XX...", ".....", ".....", "....."})

	eyes := FindEyes(b, game.Black)
	assert.Equal(1, eyes.Count())
	assert.Equal(0, eyes.LivingGroups())

	// nothing there for White
	assert.Equal(0, FindEyes(b, game.White).Count())
}

func TestFindEyes_LivingGroup(t *testing.T) {
	assert := assert.New(t)

	// three one-point eyes along column 0, all owned by the same group
	b := board([]string{".X.X.", "XXXXX", ".....", ".....", "....."})

	eyes := FindEyes(b, game.Black)
	assert.Equal(3, eyes.Count())
	assert.Equal(1, eyes.LivingGroups())
	assert.Len(eyes.LivingPoints(), 3)
}

func TestFindEyes_Encircled(t *testing.T) {
	assert := assert.New(t)

	// the perimeter ring encircles the interior on its own; the centre
	// stone is a second bordering chain
	// ⎢ X X X X X ⎥
	// ⎢ X . . . X ⎥
	// ⎢ X . X . X ⎥
	// ⎢ X . . . X ⎥
	// ⎢ X X X X X ⎥
	b := board([]string{"XXXXX", "X...X", "X.X.X", "X...X", "XXXXX"})

	eyes := FindEyes(b, game.Black)
	assert.Equal(1, eyes.Count())
	ring := b.At(0, 0).Chain
	assert.Len(eyes[ring], 1, "the ring should own the encircled region")
	assert.Len(eyes[ring][0], 8)
}

func TestFindEyes_BoundingBoxFilter(t *testing.T) {
	assert := assert.New(t)

	// the middle column's empty run is walled in by four separate chains,
	// none of which encloses it alone
	// ⎢ . . X . . ⎥
	// ⎢ . X . X . ⎥
	// ⎢ . X . X . ⎥
	// ⎢ . X . X . ⎥
	// ⎢ . . X . . ⎥
	b := board([]string{".....", ".XXX.", "X...X", ".XXX.", "....."})

	eyes := FindEyes(b, game.Black)
	assert.Equal(0, eyes.Count())
}

func TestMaxEyeSize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(10, maxEyeSize(board([]string{".....", ".....", ".....", ".....", "....."})))

	// offline points don't count as live board
	assert.Equal(8, maxEyeSize(board([]string{"#####", ".....", ".....", ".....", "....."})))

	// capped at 11 on big boards
	big := make([]string, 9)
	for i := range big {
		big[i] = "........."
	}
	assert.Equal(11, maxEyeSize(board(big)))
}
