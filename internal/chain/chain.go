// Package chain holds the unit math for moving amounts between the API's
// decimal ETH domain and on-chain wei integers. The gateway never touches
// private keys; signing and submission happen entirely in the payer's wallet,
// which reports the resulting transaction hash through the settle endpoint.
package chain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const etherDecimals = 18

// ParseEth converts a decimal ETH string to integer wei. The conversion works
// on the decimal digits, so "0.1" is exactly 100000000000000000 wei; anything
// finer than one wei is rejected rather than truncated.
func ParseEth(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(amount, ".")
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", amount, etherDecimals)
	}
	frac += strings.Repeat("0", etherDecimals-len(frac))
	if whole == "" {
		whole = "0"
	}

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	return wei, nil
}

// EthToWei converts a decimal ETH amount to integer wei, going through the
// shortest decimal representation of the float so round amounts stay exact.
func EthToWei(amount float64) *big.Int {
	wei, err := ParseEth(strconv.FormatFloat(amount, 'f', -1, 64))
	if err != nil {
		return new(big.Int)
	}
	return wei
}

// WeiToEth converts integer wei back to a decimal ETH amount.
func WeiToEth(wei *big.Int) float64 {
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(1e18))
	out, _ := eth.Float64()
	return out
}
