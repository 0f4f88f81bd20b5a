package toggle

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		current, n, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{-1, 3, 0},
		{-2, 3, 2},
		{-5, 3, 2},
		{7, 3, 2},
		{0, 1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Advance(tt.current, tt.n), "Advance(%d, %d)", tt.current, tt.n)
	}
}

func TestLayout_Variant(t *testing.T) {
	v, ok := Plain("us").Variant()
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok = WithVariant("rs", "latin").Variant()
	assert.True(t, ok)
	assert.Equal(t, "latin", v)

	// an explicitly empty variant is still a variant
	_, ok = WithVariant("de", "").Variant()
	assert.True(t, ok)

	assert.Equal(t, "us", Plain("us").String())
	assert.Equal(t, "rs(latin)", WithVariant("rs", "latin").String())
}

type failingReporter struct{ calls *int }

func (r failingReporter) Report(int, Layout) error {
	*r.calls++
	return errors.New("closed")
}

func TestMultiReporter(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	m := MultiReporter{WriterReporter{W: &out}, failingReporter{&calls}, failingReporter{&calls}}

	err := m.Report(2, Plain("rs"))
	require.Error(t, err)
	assert.Equal(t, "2\n", out.String())
	assert.Equal(t, 1, calls)
}
