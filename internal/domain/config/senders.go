package config

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Sender is a resolved signing account
type Sender struct {
	Name       string
	Type       SenderType
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}
