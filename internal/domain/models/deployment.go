package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DeploymentRequest is a single deploy invocation
type DeploymentRequest struct {
	ContractName    string
	ConstructorArgs []any
}

// DeployTransaction is the raw contract creation transaction
type DeployTransaction struct {
	From  common.Address
	Data  []byte
	Value *big.Int
}

// GasEstimate holds the estimated cost of a deployment
type GasEstimate struct {
	GasUnits     uint64   `json:"gasUnits"`
	GasPriceWei  *big.Int `json:"gasPriceWei"`
	TotalCostWei *big.Int `json:"totalCostWei"`
}

// NewGasEstimate derives the total cost as gasUnits * gasPrice
func NewGasEstimate(gasUnits uint64, gasPriceWei *big.Int) GasEstimate {
	price := new(big.Int)
	if gasPriceWei != nil {
		price.Set(gasPriceWei)
	}
	total := new(big.Int).Mul(new(big.Int).SetUint64(gasUnits), price)
	return GasEstimate{
		GasUnits:     gasUnits,
		GasPriceWei:  price,
		TotalCostWei: total,
	}
}

// DeployedContract is the handle returned after a confirmed deployment
type DeployedContract struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
	TxHash  common.Hash    `json:"txHash"`
}

// Deployment is the persisted record of a deployment
type Deployment struct {
	ID           string         `json:"id"`
	ChainID      uint64         `json:"chainId"`
	Network      string         `json:"network"`
	ContractName string         `json:"contractName"`
	Artifact     string         `json:"artifact,omitempty"`
	Address      common.Address `json:"address"`
	TxHash       common.Hash    `json:"txHash"`
	Deployer     common.Address `json:"deployer"`
	Gas          GasEstimate    `json:"gas"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// DeploymentID builds the registry key for a contract on a chain
func DeploymentID(chainID uint64, contractName string) string {
	return fmt.Sprintf("%d/%s", chainID, contractName)
}
