package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poi "github.com/sokosun/oreore-poi"
)

func TestProgramsFitTheHardware(t *testing.T) {
	for name, img := range map[string]*poi.Image{
		"bluewave": Bluewave,
		"rainbow":  Rainbow,
		"symbol":   Symbol,
		"red":      Red,
		"green":    Green,
		"blue":     Blue,
	} {
		require.NotNil(t, img, name)
		assert.Equal(t, poi.LineWidth, img.Width, name)
		assert.Len(t, img.Pix, img.Width*img.Height*3, name)
		assert.Len(t, img.Line(0), poi.LineWidth*3, name)
		assert.Positive(t, img.Period, name)
	}
}

func TestSelectMapping(t *testing.T) {
	want := map[uint8]*poi.Image{
		0: Bluewave, 1: Bluewave, 8: Bluewave,
		9:  Symbol,
		10: Rainbow,
		11: Red, 12: Red,
		13: Green,
		14: Blue, 15: Blue,
	}
	for code, img := range want {
		assert.Same(t, img, Select(code), "code %d", code)
	}
	// Only the low 4 bits participate.
	assert.Same(t, Select(3), Select(3|0x10))
}

func TestSelectNeverNil(t *testing.T) {
	for code := 0; code < 256; code++ {
		require.NotNil(t, Select(uint8(code)), "code %d", code)
	}
}

func TestDimHalvesAndClamps(t *testing.T) {
	assert.EqualValues(t, 127, dim(255))
	assert.EqualValues(t, 127, dim(300))
	assert.EqualValues(t, 0, dim(-5))
	assert.EqualValues(t, 5, dim(10))
}

func TestSolidIsUniform(t *testing.T) {
	line := Red.Line(0)
	for i := 0; i < len(line); i += 3 {
		assert.EqualValues(t, 127, line[i])
		assert.EqualValues(t, 0, line[i+1])
		assert.EqualValues(t, 0, line[i+2])
	}
}
