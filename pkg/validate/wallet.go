package validate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	walletPrefix = "GC"
	walletDigits = 10
)

// NewWalletAddress returns "GC" followed by nine random digits and a Luhn check digit.
func NewWalletAddress() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return "", fmt.Errorf("generate wallet digits: %w", err)
	}
	_, number, err := goluhn.Calculate(fmt.Sprintf("%09d", n.Int64()))
	if err != nil {
		return "", fmt.Errorf("calculate check digit: %w", err)
	}
	return walletPrefix + number, nil
}

func IsWalletAddress(s string) bool {
	digits, ok := strings.CutPrefix(s, walletPrefix)
	if !ok || len(digits) != walletDigits {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(digits) == nil
}
