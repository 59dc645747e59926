package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrWrap(t *testing.T) {
	assert.Equal(t, "value", ErrWrap("fallback")("value", nil))
	assert.Equal(t, "fallback", ErrWrap("fallback")("value", errors.New("failure")))
	assert.Equal(t, 0, ErrWrap(0)(10, errors.New("failure")))
}

func TestErrSuppress(t *testing.T) {
	assert.NotPanics(t, func() { ErrSuppress(errors.New("failure")) })
}

func TestChunks(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []int
		size  int
		want  [][]int
	}{
		{"empty", []int{}, 2, nil},
		{"exact", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3}, 2, [][]int{{1, 2}, {3}}},
		{"larger", []int{1, 2}, 100, [][]int{{1, 2}}},
		{"unbounded", []int{1, 2, 3}, 0, [][]int{{1, 2, 3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Chunks(tc.input, tc.size))
		})
	}
}
