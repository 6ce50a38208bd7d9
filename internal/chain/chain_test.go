package chain_test

import (
	"testing"

	"github.com/chainpay/gateway/internal/chain"
	"github.com/stretchr/testify/assert"
)

func TestParseEth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000"},
		{"0.1", "100000000000000000"},
		{"0.000000000000000001", "1"},
		{"2.5", "2500000000000000000"},
		{".5", "500000000000000000"},
		{"1000", "1000000000000000000000"},
	}

	for _, tt := range tests {
		wei, err := chain.ParseEth(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, wei.String(), tt.in)
	}
}

func TestParseEth_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.0000000000000000001"} {
		_, err := chain.ParseEth(in)
		assert.Error(t, err, in)
	}
}

func TestEthToWei_RoundAmountsStayExact(t *testing.T) {
	assert.Equal(t, "100000000000000000", chain.EthToWei(0.1).String())
	assert.Equal(t, "1000000000000000000", chain.EthToWei(1).String())
	assert.Equal(t, "2500000000000000000", chain.EthToWei(2.5).String())
}

func TestWeiToEth(t *testing.T) {
	assert.InDelta(t, 0.1, chain.WeiToEth(chain.EthToWei(0.1)), 1e-12)
	assert.InDelta(t, 1.0, chain.WeiToEth(chain.EthToWei(1)), 1e-12)
}
