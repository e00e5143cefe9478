package mines

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)
}

func TestParseSeed(t *testing.T) {
	testCases := []struct {
		seed string
		ok   bool
	}{
		{"15:15:50", true},
		{" 9:9:10\n", true},
		{"1:2:0", true},
		{"15:15", false},
		{"a:b:c", false},
		{"", false},
		{"3:3:9", false},
		{"0:3:0", false},
	}
	for _, test := range testCases {
		p, err := ParseSeed(test.seed)
		if test.ok {
			assert.NoError(t, err, test.seed)
			assert.NotNil(t, p, test.seed)
		} else {
			assert.Error(t, err, test.seed)
			assert.Nil(t, p, test.seed)
		}
	}
}

func TestParseSeedReportsInvalidParams(t *testing.T) {
	_, err := ParseSeed("2:2:4")
	var pe *InvalidParamsError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, GameParams{Width: 2, Height: 2, MineCount: 4}, pe.Params)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, GameParams{Width: 1, Height: 1, MineCount: 0}.Validate())
	assert.NoError(t, GameParams{Width: 15, Height: 15, MineCount: 224}.Validate())
	assert.Error(t, GameParams{Width: 15, Height: 15, MineCount: 225}.Validate())
	assert.Error(t, GameParams{Width: -1, Height: 15, MineCount: 0}.Validate())

	// 3 * 6148914691236517206 wraps around to 2
	huge := GameParams{Width: 3, Height: 6148914691236517206, MineCount: 0}
	err := huge.Validate()
	var pe *InvalidParamsError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "too large")
	assert.Error(t, GameParams{Width: math.MaxInt, Height: 2, MineCount: 1}.Validate())
	assert.NoError(t, GameParams{Width: 1, Height: math.MaxInt, MineCount: 0}.Validate())
}
