package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	minCode = 1000
	maxCode = 9999
)

// CodeGenerator produces candidate codes.
type CodeGenerator func() (string, error)

var codeSpan = big.NewInt(maxCode - minCode + 1)

// NewCode returns a uniformly random code in [1000, 9999].
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}

// IsValidCode reports whether s is a code NewCode could have produced.
func IsValidCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= minCode && n <= maxCode && strconv.Itoa(n) == s
}
