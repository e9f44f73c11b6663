package models

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEther renders a wei amount in ether, always keeping at least one decimal place
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(wei, -18).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
