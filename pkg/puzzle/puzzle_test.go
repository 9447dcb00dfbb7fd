package puzzle

import "testing"

func TestDifficultyCapIsBoundedByAreaOverFive(t *testing.T) {
	rows, cols, difficulty := 10, 10, 9
	cap := DifficultyCap(difficulty, rows, cols)
	ceiling := (rows * cols) / 5
	if cap > ceiling {
		t.Errorf("DifficultyCap(%d, %d, %d) = %d, must not exceed area/5 = %d", difficulty, rows, cols, cap, ceiling)
	}
}

func TestDifficultyCapGrowsWithDifficulty(t *testing.T) {
	rows, cols := 20, 20
	low := DifficultyCap(1, rows, cols)
	high := DifficultyCap(4, rows, cols)
	if high < low {
		t.Errorf("DifficultyCap should not shrink as difficulty increases on a board large enough to avoid the area/5 ceiling: low=%d high=%d", low, high)
	}
}

func TestDigits(t *testing.T) {
	cases := map[int]int{1: 1, 9: 1, 10: 2, 99: 2, 100: 3, 12345: 5}
	for n, want := range cases {
		if got := digits(n); got != want {
			t.Errorf("digits(%d) = %d, want %d", n, got, want)
		}
	}
}
