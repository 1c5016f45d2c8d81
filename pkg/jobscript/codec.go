package jobscript

import (
	"fmt"
	"strconv"
	"strings"
)

// Value codecs convert between directive surface text and canonical values.
// Decoders are total: any input yields (value, ok), never an error or panic.
// Canonical units are whole minutes for time and whole gigabytes for memory.

// DecodeTime parses a time limit into whole minutes. Accepted forms are
// H:MM:SS (seconds are discarded) and a bare integer, which is taken as
// minutes directly.
func DecodeTime(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(parts[0])
		if err != nil || v < 0 {
			return 0, false
		}
		return v, true
	case 3:
		h, err := strconv.Atoi(parts[0])
		if err != nil || h < 0 {
			return 0, false
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return 0, false
		}
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, false
		}
		return h*60 + m, true
	default:
		return 0, false
	}
}

// EncodeTime renders minutes as H:MM:00, with minutes zero-padded to two
// digits and hours unpadded.
func EncodeTime(minutes int) string {
	return fmt.Sprintf("%d:%02d:00", minutes/60, minutes%60)
}

// DecodeMemory parses a memory request into whole gigabytes. The value may
// carry a G, M or K suffix (case-insensitive); a bare number is already in
// gigabytes. Sub-gigabyte quantities round up to the next whole gigabyte.
func DecodeMemory(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	divisor := 1
	switch s[len(s)-1] {
	case 'G', 'g':
		s = s[:len(s)-1]
	case 'M', 'm':
		s = s[:len(s)-1]
		divisor = 1024
	case 'K', 'k':
		s = s[:len(s)-1]
		divisor = 1024 * 1024
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return (v + divisor - 1) / divisor, true
}

// EncodeMemory renders whole gigabytes with an explicit G suffix.
func EncodeMemory(gb int) string {
	return fmt.Sprintf("%dG", gb)
}

// DecodeInt parses a non-negative base-10 integer.
func DecodeInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// EncodeInt renders an integer field value.
func EncodeInt(v int) string {
	return strconv.Itoa(v)
}

// DecodeString trims surrounding whitespace and rejects empty values.
func DecodeString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
