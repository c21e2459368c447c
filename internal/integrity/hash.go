// Package integrity computes and compares content digests for document payloads.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DefaultVisibleLength is the number of hash characters kept by Truncate
// when callers pass a non-positive length.
const DefaultVisibleLength = 16

// ComputeHash serializes payload as JSON and returns the hex SHA-256 digest.
// Struct fields serialize in declaration order and map keys are sorted by
// encoding/json, so equal payloads always produce equal digests.
func ComputeHash(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serialize payload: %w", err)
	}
	return HashBytes(data), nil
}

// HashBytes returns the hex SHA-256 digest of raw bytes.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether two digests are exactly equal.
func VerifyHash(expected, actual string) bool {
	return expected == actual
}

// Truncate keeps the first and last visibleLength/2 characters of hash and
// elides the middle. Hashes no longer than visibleLength are returned as is.
func Truncate(hash string, visibleLength int) string {
	if visibleLength <= 0 {
		visibleLength = DefaultVisibleLength
	}
	if len(hash) <= visibleLength {
		return hash
	}
	half := visibleLength / 2
	return hash[:half] + "..." + hash[len(hash)-half:]
}
