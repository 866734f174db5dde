package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededDie_InRange(t *testing.T) {
	r := NewSeeded(1)

	for i := 0; i < 1000; i++ {
		v := r.Die()
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededDie_Replays(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Die(), b.Die())
	}
}

func TestSeededUniform_InRange(t *testing.T) {
	r := NewSeeded(7)

	for i := 0; i < 1000; i++ {
		v := r.Uniform(4.0, 5.0)
		assert.GreaterOrEqual(t, v, 4.0)
		assert.LessOrEqual(t, v, 5.0)
	}
}

func TestSeededUniformInt_InRange(t *testing.T) {
	r := NewSeeded(7)

	for i := 0; i < 1000; i++ {
		v := r.UniformInt(10, 14)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 14)
	}
}

func TestScripted_Cycles(t *testing.T) {
	r := NewScripted(3, 4, 5)

	got := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		got = append(got, r.Die())
	}

	assert.Equal(t, []int{3, 4, 5, 3, 4, 5, 3}, got)
	assert.Equal(t, 7, r.Rolled())
}

func TestScripted_UniformMidpoint(t *testing.T) {
	r := NewScripted(1)

	assert.InDelta(t, 4.5, r.Uniform(4.0, 5.0), 1e-9)
	assert.Equal(t, 12, r.UniformInt(10, 14))
}

func TestSum(t *testing.T) {
	r := NewScripted(3, 4, 5)

	assert.Equal(t, 12, Sum(r, 3))
}
