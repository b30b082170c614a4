package secrecy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"secrecy/internal/lattice"
)

func TestPCStackEmptyIsBottom(t *testing.T) {
	lat := lattice.Default()
	s := NewPCStack()
	assert.Equal(t, lat.Min(), s.Current(lat))
}

func TestPCStackJoinsPushedFrames(t *testing.T) {
	lat := lattice.Default()
	s := NewPCStack()
	s.Push("if", lattice.DefaultLow)
	s.Push("while", lattice.DefaultHigh)
	assert.Equal(t, lattice.DefaultHigh, s.Current(lat))
}

func TestPCStackPopRemovesMostRecentFrame(t *testing.T) {
	lat := lattice.Default()
	s := NewPCStack()
	s.Push("if", lattice.DefaultHigh)
	s.Pop()
	assert.Equal(t, lat.Min(), s.Current(lat))
}

func TestPCStackPopOriginReleasesMatchingFrameOutOfOrder(t *testing.T) {
	lat := lattice.Default()
	s := NewPCStack()
	s.Push("f", lattice.DefaultHigh)
	s.Push("if", lattice.DefaultLow)
	s.PopOrigin("f")
	assert.Equal(t, lattice.DefaultLow, s.Current(lat))
	assert.Len(t, s.Levels(), 1)
}

func TestPCStackPopOriginIsNoOpWhenAbsent(t *testing.T) {
	s := NewPCStack()
	s.Push("if", lattice.DefaultLow)
	s.PopOrigin("nonexistent")
	assert.Len(t, s.Levels(), 1)
}
