package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateShortID generates a short, URL-safe random ID
// Format: 8 characters, lowercase alphanumeric
// Example: "x7k9m2p1"
func GenerateShortID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 8

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}

	return string(result)
}

// GenerateMilestoneCode generates a human-readable milestone reference
// Example: "MS-x7k9m2p1"
func GenerateMilestoneCode() string {
	return "MS-" + GenerateShortID()
}
