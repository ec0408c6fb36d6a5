package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

// SupportedNetworks maps chain ids to display names.
var SupportedNetworks = map[int64]string{
	1:        "Ethereum Mainnet",
	8453:     "Base",
	84531:    "Base Goerli Testnet",
	84532:    "Base Sepolia Testnet",
	5:        "Goerli Testnet",
	11155111: "Sepolia Testnet",
}

// UnknownNetworkName is shown for chain ids not in SupportedNetworks.
const UnknownNetworkName = "Unknown Network"

// NetworkName returns the display name for a chain id.
func NetworkName(chainID int64) string {
	if name, ok := SupportedNetworks[chainID]; ok {
		return name
	}
	return UnknownNetworkName
}

// ParseChainID parses a 0x-prefixed hex chain id.
func ParseChainID(chainIDHex string) (int64, error) {
	s := strings.TrimPrefix(strings.ToLower(chainIDHex), "0x")
	if s == "" {
		return 0, fmt.Errorf("empty chain id")
	}
	id, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed chain id %q: %w", chainIDHex, err)
	}
	return id, nil
}

// FormatChainID renders a chain id in the 0x-prefixed hex form providers
// expect.
func FormatChainID(chainID int64) string {
	return fmt.Sprintf("0x%x", chainID)
}

// FormatAddress shortens an account address for display, keeping the first
// six and last four characters.
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
