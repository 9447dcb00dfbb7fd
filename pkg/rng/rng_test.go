package rng

import (
	"testing"

	"github.com/mines/noguess/pkg/model"
)

func TestValidateSeed(t *testing.T) {
	cases := []struct {
		seed    string
		wantErr bool
	}{
		{"abc123", false},
		{"with space", false}, // preserved quirk: spaces are valid (Open Question 3)
		{"", false},
		{"0123456789x", true}, // 11 characters, over the limit
		{"bad!char", true},
	}
	for _, tc := range cases {
		err := ValidateSeed(tc.seed)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateSeed(%q) error = %v, wantErr %v", tc.seed, err, tc.wantErr)
		}
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a := New("myseed", 0)
	b := New("myseed", 0)
	for i := 0; i < 50; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("two sources from the same seed diverged at draw %d", i)
		}
	}
}

func TestNewDecorrelatesWorkers(t *testing.T) {
	a := New("myseed", 0)
	b := New("myseed", 1)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("worker 0 and worker 1 streams were identical across 20 draws")
	}
}

func TestShufflePreservesElements(t *testing.T) {
	positions := []model.TilePosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	source := New("seed", 0)
	before := append([]model.TilePosition{}, positions...)
	source.Shuffle(positions)
	if len(positions) != len(before) {
		t.Fatalf("shuffle changed length")
	}
	counts := make(map[model.TilePosition]int)
	for _, p := range positions {
		counts[p]++
	}
	for _, p := range before {
		if counts[p] != 1 {
			t.Errorf("position %v missing or duplicated after shuffle", p)
		}
	}
}
