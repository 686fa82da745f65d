package voucherno

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFYTag(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-04-01", "2425"},
		{"2024-12-31", "2425"},
		{"2025-03-31", "2425"},
		{"2024-03-15", "2324"},
		{"2025-04-01", "2526"},
		{"2026-01-10", "2526"},
	}
	for _, tt := range tests {
		asOf, err := time.Parse("2006-01-02", tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, FYTag(asOf), "date %s", tt.date)
	}
}

func TestNormalizeBranch(t *testing.T) {
	tests := []struct {
		prefix   string
		want     string
		fallback bool
	}{
		{"Salem", "SLM", false},
		{"salem", "SLM", false},
		{"  Coimbatore ", "CBE", false},
		{"Tiruchirappalli", "TRY", false},
		{"Head Office", "HOF", false},
		{"Ooty", "OOT", true},
		{"New-Branch 9", "NEW", true},
		{"", "HOF", true},
		{"!!", "HOF", true},
	}
	for _, tt := range tests {
		code, fallback := NormalizeBranch(tt.prefix)
		assert.Equal(t, tt.want, code, "prefix %q", tt.prefix)
		assert.Equal(t, tt.fallback, fallback, "prefix %q", tt.prefix)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "SLM24250001", Format("SLM", "2425", 1))
	assert.Equal(t, "HOF24250123", Format("HOF", "2425", 123))
	assert.Equal(t, "CBE25269999", Format("CBE", "2526", 9999))
	assert.Regexp(t, `^[A-Z]{3}\d{8}$`, Format("SLM", "2425", 42))
}

func TestSequenceOf(t *testing.T) {
	assert.Equal(t, 1, SequenceOf("SLM24250001"))
	assert.Equal(t, 9999, SequenceOf("SLM24259999"))
	assert.Equal(t, 0, SequenceOf("SLM"))
	assert.Equal(t, 0, SequenceOf("SLM2425XXXX"))
	assert.Equal(t, 0, SequenceOf(""))
}

func TestMaxSequence(t *testing.T) {
	assert.Equal(t, 0, MaxSequence(nil))
	assert.Equal(t, 17, MaxSequence([]string{
		"SLM24250003",
		"SLM24250017",
		"SLM24250009",
	}))
	assert.Equal(t, 5, MaxSequence([]string{"SLM24250005", "bogus"}))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "SLM2425", Prefix("SLM", "2425"))
}
