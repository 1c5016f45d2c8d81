package jobscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTime(t *testing.T) {
	tests := map[string]struct {
		input   string
		minutes int
		ok      bool
	}{
		"clock form":            {input: "2:30:00", minutes: 150, ok: true},
		"bare minutes":          {input: "90", minutes: 90, ok: true},
		"seconds are discarded": {input: "1:00:59", minutes: 60, ok: true},
		"surrounding space":     {input: " 0:45:00 ", minutes: 45, ok: true},
		"two components":        {input: "30:00", ok: false},
		"minutes out of range":  {input: "1:75:00", ok: false},
		"not a number":          {input: "soon", ok: false},
		"empty":                 {input: "", ok: false},
		"negative":              {input: "-5", ok: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			minutes, ok := DecodeTime(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.minutes, minutes)
			}
		})
	}
}

func TestEncodeTime(t *testing.T) {
	assert.Equal(t, "2:30:00", EncodeTime(150))
	assert.Equal(t, "0:05:00", EncodeTime(5))
	assert.Equal(t, "26:00:00", EncodeTime(1560))
}

func TestDecodeMemory(t *testing.T) {
	tests := map[string]struct {
		input string
		gb    int
		ok    bool
	}{
		"bare gigabytes":       {input: "8", gb: 8, ok: true},
		"gigabyte suffix":      {input: "4G", gb: 4, ok: true},
		"megabytes exact":      {input: "2048M", gb: 2, ok: true},
		"megabytes round up":   {input: "2049M", gb: 3, ok: true},
		"kilobytes round up":   {input: "500K", gb: 1, ok: true},
		"lowercase suffix":     {input: "16g", gb: 16, ok: true},
		"not a number":         {input: "lots", ok: false},
		"fractional value":     {input: "1.5G", ok: false},
		"suffix without value": {input: "G", ok: false},
		"empty":                {input: "", ok: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			gb, ok := DecodeMemory(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.gb, gb)
			}
		})
	}
}

func TestEncodeMemory(t *testing.T) {
	assert.Equal(t, "4G", EncodeMemory(4))
	assert.Equal(t, "128G", EncodeMemory(128))
}

func TestDecodeInt(t *testing.T) {
	v, ok := DecodeInt("16")
	assert.True(t, ok)
	assert.Equal(t, 16, v)

	_, ok = DecodeInt("four")
	assert.False(t, ok)

	_, ok = DecodeInt("-1")
	assert.False(t, ok)

	v, ok = DecodeInt("0")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestDecodeString(t *testing.T) {
	s, ok := DecodeString("  gpu  ")
	assert.True(t, ok)
	assert.Equal(t, "gpu", s)

	_, ok = DecodeString("   ")
	assert.False(t, ok)
}
