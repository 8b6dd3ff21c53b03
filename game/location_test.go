package game

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		line string
		pos  Pos
		ok   bool
	}{
		{"A1", Pos{1, 1}, true},
		{"B9", Pos{2, 9}, true},
		{"b9", Pos{2, 9}, true},
		{"  c3\r", Pos{3, 3}, true},
		{"I10", Pos{9, 10}, true},
		{"A01", Pos{1, 1}, true},
		{"", Pos{}, false},
		{"A", Pos{}, false},
		{"9B", Pos{}, false},
		{"B0", Pos{}, false},
		{"B 9", Pos{}, false},
		{"B9x", Pos{}, false},
		{"B-1", Pos{}, false},
		{"J1", Pos{}, false},
		{"A11", Pos{}, false},
		{"?1", Pos{}, false},
	}
	for _, test := range testCases {
		pos, err := ParseLocation(test.line, 9, 10)
		if test.ok {
			assert.NoError(t, err, "%q", test.line)
			assert.Equal(t, test.pos, pos, "%q", test.line)
		} else {
			assert.ErrorIs(t, err, ErrBadLocation, "%q", test.line)
		}
	}
}
