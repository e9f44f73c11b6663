package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
)

// FallbackPrivateKeyEnv is read when no sender is configured in foundry.toml
const FallbackPrivateKeyEnv = "DEPLOYER_PRIVATE_KEY"

// ResolveSender looks up a named sender in the profile's treb config,
// falling back to the default profile and then to DEPLOYER_PRIVATE_KEY.
func ResolveSender(foundryConfig *config.FoundryConfig, profile, name string) (*config.Sender, error) {
	senderCfg, found := lookupSender(foundryConfig, profile, name)
	if !found {
		key := os.Getenv(FallbackPrivateKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("%w: '%s' is not configured in [profile.%s.treb.senders] and %s is not set",
				domain.ErrSenderNotFound, name, profile, FallbackPrivateKeyEnv)
		}
		senderCfg = config.SenderConfig{Type: config.SenderTypePrivateKey, PrivateKey: key}
	}

	if senderCfg.Type != config.SenderTypePrivateKey {
		return nil, fmt.Errorf("%w: sender '%s' has type %s, only %s can sign deployments",
			domain.ErrUnsupportedSender, name, senderCfg.Type, config.SenderTypePrivateKey)
	}

	rawKey := strings.TrimPrefix(os.ExpandEnv(senderCfg.PrivateKey), "0x")
	if rawKey == "" {
		return nil, fmt.Errorf("sender '%s' has an empty private key", name)
	}
	key, err := crypto.HexToECDSA(rawKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key for sender '%s': %w", name, err)
	}

	address := crypto.PubkeyToAddress(key.PublicKey)
	if senderCfg.Address != "" && common.HexToAddress(senderCfg.Address) != address {
		return nil, fmt.Errorf("sender '%s' private key controls %s, not the configured address %s",
			name, address.Hex(), senderCfg.Address)
	}

	return &config.Sender{
		Name:       name,
		Type:       senderCfg.Type,
		Address:    address,
		PrivateKey: key,
	}, nil
}

func lookupSender(foundryConfig *config.FoundryConfig, profile, name string) (config.SenderConfig, bool) {
	if foundryConfig == nil {
		return config.SenderConfig{}, false
	}
	for _, p := range []string{profile, config.DefaultProfile} {
		pc, ok := foundryConfig.Profile[p]
		if !ok || pc.Treb == nil {
			continue
		}
		if sender, ok := pc.Treb.Senders[name]; ok {
			return sender, true
		}
	}
	return config.SenderConfig{}, false
}
