package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pnrPattern         = regexp.MustCompile(`^[0-9A-Z]{10}$`)
	bookingIDPattern   = regexp.MustCompile(`^TKT[0-9A-F]{8}$`)
	transactionPattern = regexp.MustCompile(`^TXN[0-9A-F]{10}$`)
)

func TestGeneratePNR_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		pnr := GeneratePNR()
		require.Regexp(t, pnrPattern, pnr)
		assert.True(t, IsPNR(pnr), pnr)
		assert.False(t, seen[pnr], "duplicate PNR %s", pnr)
		seen[pnr] = true
	}
}

func TestGenerateBookingID_UniqueAndFormatted(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		id := GenerateBookingID()
		require.Regexp(t, bookingIDPattern, id)
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}

func TestGenerateTransactionID_UniqueAndFormatted(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		id := GenerateTransactionID()
		require.Regexp(t, transactionPattern, id)
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

func TestIsPNR(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"AB12CD34EF", true},
		{"0000000000", true},
		{"ab12cd34ef", false},
		{"AB12CD34E", false},
		{"AB12CD34EFG", false},
		{"AB12-D34EF", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPNR(tt.in))
		})
	}
}
