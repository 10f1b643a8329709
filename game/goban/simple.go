package goban

import "github.com/kansuji/tengen/game"

// The textual board form is a sequence of N strings of length N. String i is
// column i and character j is row j, so the first character of the first
// string is the bottom-left of the board.
//
//	'X' Black, 'O' White, '.' Empty, '#' offline

// FromSimple builds a board from its textual form. Unknown characters decode
// as Empty; callers are expected to pre-validate. Chains are not assigned.
func FromSimple(simple []string) *Board {
	b := New(len(simple))
	for x, column := range simple {
		for y := 0; y < len(column); y++ {
			if x >= int(b.size) || y >= int(b.size) {
				continue
			}
			switch column[y] {
			case 'X':
				b.it[x][y].Colour = game.Black
			case 'O':
				b.it[x][y].Colour = game.White
			case '#':
				b.it[x][y].Colour = game.Offline
			default:
				b.it[x][y].Colour = game.Empty
			}
		}
	}
	return b
}

// Simple renders the board in its textual form. It is the exact inverse of
// FromSimple modulo chain and liberty fields.
func (b *Board) Simple() []string {
	retVal := make([]string, b.size)
	column := make([]byte, b.size)
	for x := int32(0); x < b.size; x++ {
		for y := int32(0); y < b.size; y++ {
			switch b.it[x][y].Colour {
			case game.Black:
				column[y] = 'X'
			case game.White:
				column[y] = 'O'
			case game.Offline:
				column[y] = '#'
			default:
				column[y] = '.'
			}
		}
		retVal[x] = string(column)
	}
	return retVal
}

// SimpleEq reports whether two textual boards describe the same position.
func SimpleEq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
