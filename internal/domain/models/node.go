package models

import "fmt"

// LocalNode describes a background anvil process serving the localhost network
type LocalNode struct {
	Name    string `json:"name"`
	Port    string `json:"port"`
	ChainID string `json:"chainId,omitempty"`
	PidFile string `json:"pidFile"`
	LogFile string `json:"logFile"`
}

// RPCURL is where the node listens
func (n *LocalNode) RPCURL() string {
	return fmt.Sprintf("http://localhost:%s", n.Port)
}

// NodeStatus represents the status of a local node
type NodeStatus struct {
	Running    bool   `json:"running"`
	PID        int    `json:"pid,omitempty"`
	RPCURL     string `json:"rpcUrl,omitempty"`
	LogFile    string `json:"logFile"`
	RPCHealthy bool   `json:"rpcHealthy"`
	ChainID    uint64 `json:"chainId,omitempty"`
	Error      string `json:"error,omitempty"`
}
