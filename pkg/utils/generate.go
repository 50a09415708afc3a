package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING CODES ====================

const pnrAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PNRLength panjang kode PNR
const PNRLength = 10

// GeneratePNR returns 10 random characters from [0-9A-Z].
func GeneratePNR() string {
	var sb strings.Builder
	sb.Grow(PNRLength)
	max := big.NewInt(int64(len(pnrAlphabet)))
	for i := 0; i < PNRLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand tidak gagal di platform yang didukung
			panic(err)
		}
		sb.WriteByte(pnrAlphabet[n.Int64()])
	}
	return sb.String()
}

// GenerateBookingID format: TKT + 8 hex uppercase
func GenerateBookingID() string {
	return "TKT" + randomHex(8)
}

// GenerateTransactionID format: TXN + 10 hex uppercase
func GenerateTransactionID() string {
	return "TXN" + randomHex(10)
}

func randomHex(n int) string {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))[:n]
}

// IsPNR mengecek format PNR (10 karakter [0-9A-Z])
func IsPNR(s string) bool {
	if len(s) != PNRLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(pnrAlphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
