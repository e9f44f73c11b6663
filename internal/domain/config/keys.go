package config

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork   ConfigKey = "network"
	ConfigKeySender    ConfigKey = "sender"
	ConfigKeyContract  ConfigKey = "contract"
	ConfigKeyProfile   ConfigKey = "profile"
	ConfigKeyTimeout   ConfigKey = "timeout"
	ConfigKeySkipBuild ConfigKey = "skip_build"
)

// Default values for configuration keys
const (
	DefaultProfile  = "default"
	DefaultNetwork  = "localhost"
	DefaultSender   = "deployer"
	DefaultContract = "Persona"
)
