package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number, e.g. "FAT-2026-3F8A2C1D"
func GenerateInvoiceNo(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Year(), strings.ToUpper(uuid.New().String()[:8]))
}

// retrievalAlphabet omits easily-confused characters (0/O, 1/I/L).
const retrievalAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateRetrievalCode generates a short human-enterable code used to store
// and look up an invoice later, e.g. "K7MPXQ2R".
func GenerateRetrievalCode(length int) string {
	if length < 4 {
		length = 8
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a UUID slice
		return strings.ToUpper(uuid.New().String()[:length])
	}
	for i, b := range buf {
		buf[i] = retrievalAlphabet[int(b)%len(retrievalAlphabet)]
	}
	return string(buf)
}

// NormalizeRetrievalCode uppercases and strips separators from user input.
func NormalizeRetrievalCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "-", "")
	return strings.ReplaceAll(code, " ", "")
}
