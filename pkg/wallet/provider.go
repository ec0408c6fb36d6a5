package wallet

import (
	"context"
	"fmt"
)

// CodeChainNotRecognized is the provider error code reported when the user
// asks to switch to a chain the wallet has no configuration for.
const CodeChainNotRecognized = 4902

// ProviderError is a structured failure reported by a wallet provider.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("wallet provider error %d: %s", e.Code, e.Message)
}

// Provider is the wallet backend contract. Chain ids cross this boundary as
// 0x-prefixed hex strings, the form wallet providers speak natively.
type Provider interface {
	// RequestAccounts prompts the wallet for account access and returns the
	// available account addresses.
	RequestAccounts(ctx context.Context) ([]string, error)

	// RequestChainID returns the currently selected chain id.
	RequestChainID(ctx context.Context) (string, error)

	// SwitchChain asks the wallet to switch to the given chain.
	SwitchChain(ctx context.Context, chainIDHex string) error

	// OnAccountsChanged registers a callback for account selection changes.
	// It returns an unsubscribe function.
	OnAccountsChanged(fn func(accounts []string)) func()

	// OnChainChanged registers a callback for chain switches made in the
	// wallet itself. It returns an unsubscribe function.
	OnChainChanged(fn func(chainIDHex string)) func()
}
