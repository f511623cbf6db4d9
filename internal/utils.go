package internal

import (
	"crypto/md5"
	"encoding/hex"
)

// ContentHash returns the hex encoded md5 digest of text.
// Cached pronunciation files are named after it, so the same text always
// maps to the same file.
func ContentHash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

// IsASCII reports whether every rune in s is inside the 7-bit ASCII range
func IsASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
