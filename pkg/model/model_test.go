package model

import "testing"

func TestNeighborsStaysInBounds(t *testing.T) {
	corner := TilePosition{Row: 0, Col: 0}
	n := Neighbors(corner, StandardAdjacency, 5, 5)
	if len(n) != 3 {
		t.Fatalf("corner tile should have 3 neighbors in an 8-adjacency board, got %d", len(n))
	}
}

func TestReversedNegatesOffsets(t *testing.T) {
	d := []Direction{{DR: 1, DC: 2}}
	r := Reversed(d)
	if r[0] != (Direction{DR: -1, DC: -2}) {
		t.Fatalf("Reversed(%v) = %v, want {-1 -2}", d, r[0])
	}
}

func TestSentinelStartDiffersByVariant(t *testing.T) {
	puzzle := SentinelStart(Puzzle, 10, 10)
	offset := SentinelStart(OffsetPuzzle, 10, 10)
	if puzzle == offset {
		t.Fatalf("Puzzle and OffsetPuzzle sentinel starts must use different offsets (got same: %v)", puzzle)
	}
	if puzzle.Row != 15 || offset.Row != 11 {
		t.Errorf("unexpected sentinel offsets: puzzle=%v offset=%v", puzzle, offset)
	}
}

func TestBoardAtOutOfBoundsIsSpace(t *testing.T) {
	b := NewBoard(3, 3)
	if b.At(TilePosition{Row: -1, Col: 0}) != Space {
		t.Errorf("out-of-bounds tile should read as Space")
	}
}
