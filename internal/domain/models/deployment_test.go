package models

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGasEstimate(t *testing.T) {
	price := big.NewInt(20_000_000_000)
	est := NewGasEstimate(1_500_000, price)

	assert.Equal(t, uint64(1_500_000), est.GasUnits)
	assert.Equal(t, "30000000000000000", est.TotalCostWei.String())

	// mutating the input must not leak into the estimate
	price.SetInt64(1)
	assert.Equal(t, "20000000000", est.GasPriceWei.String())
}

func TestNewGasEstimateNilPrice(t *testing.T) {
	est := NewGasEstimate(21000, nil)
	assert.Equal(t, int64(0), est.TotalCostWei.Int64())
}

func TestFormatEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{name: "nil", wei: nil, want: "0.0"},
		{name: "zero", wei: big.NewInt(0), want: "0.0"},
		{name: "one ether", wei: oneEther, want: "1.0"},
		{name: "fractional", wei: big.NewInt(30_000_000_000_000_000), want: "0.03"},
		{name: "one wei", wei: big.NewInt(1), want: "0.000000000000000001"},
		{name: "ten thousand ether", wei: new(big.Int).Mul(oneEther, big.NewInt(10_000)), want: "10000.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEther(tt.wei))
		})
	}
}

func TestContractBytecodeChecks(t *testing.T) {
	c := &Contract{Name: "Persona", Path: "src/Persona.sol"}
	assert.False(t, c.HasBytecode())
	assert.Equal(t, "src/Persona.sol:Persona", c.FullName())

	c.Artifact = &Artifact{Bytecode: BytecodeObject{Object: "0x"}}
	assert.False(t, c.HasBytecode())

	c.Artifact.Bytecode.Object = "0x6080"
	assert.True(t, c.HasBytecode())
	assert.False(t, c.NeedsLinking())

	c.Artifact.Bytecode.Object = "0x6080__$abc$__"
	assert.True(t, c.NeedsLinking())
}
