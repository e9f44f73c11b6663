package config

// FoundryConfig represents the full foundry.toml configuration
type FoundryConfig struct {
	Profile      map[string]ProfileConfig   `toml:"profile"`
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanConfig struct {
	Key string `toml:"key,omitempty"` // API key for verification
	URL string `toml:"url,omitempty"` // API URL (for custom explorers)
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath  string      `toml:"src,omitempty"`
	OutPath  string      `toml:"out,omitempty"`
	LibPaths []string    `toml:"libs,omitempty"`
	Treb     *TrebConfig `toml:"treb,omitempty"`
}

// TrebConfig represents treb-specific configuration
type TrebConfig struct {
	Senders map[string]SenderConfig `json:"senders" toml:"senders"`
}

type SenderType string

var (
	SenderTypeLedger     SenderType = "ledger"
	SenderTypeTrezor     SenderType = "trezor"
	SenderTypeSafe       SenderType = "safe"
	SenderTypePrivateKey SenderType = "private_key"
)

// SenderConfig represents a sender configuration
type SenderConfig struct {
	Type           SenderType `toml:"type"`
	Address        string     `toml:"address,omitempty"`
	PrivateKey     string     `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	DerivationPath string     `toml:"derivation_path,omitempty"`
}

// OutDir returns the artifact directory configured for the profile
func (c *FoundryConfig) OutDir(profile string) string {
	if c != nil {
		if p, ok := c.Profile[profile]; ok && p.OutPath != "" {
			return p.OutPath
		}
		if p, ok := c.Profile["default"]; ok && p.OutPath != "" {
			return p.OutPath
		}
	}
	return "out"
}
