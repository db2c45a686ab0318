package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		n    int
		self bool
		want []Pair
	}{
		{"none", 0, true, nil},
		{"one without self", 1, false, nil},
		{"one with self", 1, true, []Pair{{0, 0, true}}},
		{"two skips closing pair", 2, false, []Pair{{0, 1, false}}},
		{"two with self", 2, true, []Pair{{0, 1, false}, {0, 0, true}, {1, 1, true}}},
		{"three cyclic", 3, false, []Pair{{0, 1, false}, {1, 2, false}, {2, 0, false}}},
		{"four with self", 4, true, []Pair{
			{0, 1, false}, {1, 2, false}, {2, 3, false}, {3, 0, false},
			{0, 0, true}, {1, 1, true}, {2, 2, true}, {3, 3, true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pairs(tt.n, tt.self))
		})
	}
}
