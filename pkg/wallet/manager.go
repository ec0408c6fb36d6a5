package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/idmerr"
)

// User-facing wallet messages.
const (
	MsgInstallWallet     = "Please install MetaMask!"
	MsgChainNotInWallet  = "This network needs to be added to your MetaMask first."
	msgSwitchFailedFmt   = "Failed to switch network: %s"
	msgConnectFailedFmt  = "Failed to connect wallet: %s"
	msgNoAccountsGranted = "No accounts were granted"
)

// Status is a snapshot of the wallet connection.
type Status struct {
	Connected      bool   `json:"connected"`
	Address        string `json:"address,omitempty"`
	DisplayAddress string `json:"display_address,omitempty"`
	ChainID        int64  `json:"chain_id,omitempty"`
	NetworkName    string `json:"network_name,omitempty"`
}

// Manager tracks the wallet connection: the selected account, the selected
// chain, and changes the wallet pushes on its own. A nil provider means no
// wallet extension is installed; Connect fails fast in that case.
type Manager struct {
	provider Provider

	mu         sync.Mutex
	status     Status
	unsubAccts func()
	unsubChain func()
}

// NewManager creates a wallet Manager on top of the given provider. The
// provider may be nil.
func NewManager(provider Provider) *Manager {
	return &Manager{provider: provider}
}

// Status returns a snapshot of the current connection.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Connect requests account access, reads the selected chain, and starts
// tracking wallet-initiated changes.
func (m *Manager) Connect(ctx context.Context) (Status, error) {
	if m.provider == nil {
		return Status{}, idmerr.New(idmerr.ErrCodeNoWalletProvider, MsgInstallWallet)
	}

	accounts, err := m.provider.RequestAccounts(ctx)
	if err != nil {
		return Status{}, idmerr.Newf(idmerr.ErrCodeProviderUnavailable, msgConnectFailedFmt, providerMessage(err))
	}
	if len(accounts) == 0 {
		return Status{}, idmerr.New(idmerr.ErrCodeProviderUnavailable, msgNoAccountsGranted)
	}

	chainIDHex, err := m.provider.RequestChainID(ctx)
	if err != nil {
		return Status{}, idmerr.Newf(idmerr.ErrCodeProviderUnavailable, msgConnectFailedFmt, providerMessage(err))
	}
	chainID, err := ParseChainID(chainIDHex)
	if err != nil {
		return Status{}, idmerr.Newf(idmerr.ErrCodeProviderUnavailable, msgConnectFailedFmt, err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = Status{
		Connected:      true,
		Address:        accounts[0],
		DisplayAddress: FormatAddress(accounts[0]),
		ChainID:        chainID,
		NetworkName:    NetworkName(chainID),
	}
	if m.unsubAccts == nil {
		m.unsubAccts = m.provider.OnAccountsChanged(m.handleAccountsChanged)
	}
	if m.unsubChain == nil {
		m.unsubChain = m.provider.OnChainChanged(m.handleChainChanged)
	}
	return m.status, nil
}

// Disconnect clears the connection and stops tracking wallet events.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disconnectLocked()
}

func (m *Manager) disconnectLocked() {
	if m.unsubAccts != nil {
		m.unsubAccts()
		m.unsubAccts = nil
	}
	if m.unsubChain != nil {
		m.unsubChain()
		m.unsubChain = nil
	}
	m.status = Status{}
}

// SwitchNetwork asks the wallet to switch to the given chain. A chain the
// wallet does not know yields a distinct message telling the user to add it
// first.
func (m *Manager) SwitchNetwork(ctx context.Context, chainID int64) error {
	if m.provider == nil {
		return idmerr.New(idmerr.ErrCodeNoWalletProvider, MsgInstallWallet)
	}
	m.mu.Lock()
	connected := m.status.Connected
	m.mu.Unlock()
	if !connected {
		return idmerr.New(idmerr.ErrCodeInvalidInput, "wallet is not connected")
	}

	if err := m.provider.SwitchChain(ctx, FormatChainID(chainID)); err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) && perr.Code == CodeChainNotRecognized {
			return idmerr.New(idmerr.ErrCodeChainNotRecognized, MsgChainNotInWallet)
		}
		return idmerr.Newf(idmerr.ErrCodeProviderUnavailable, msgSwitchFailedFmt, providerMessage(err))
	}

	// The wallet confirms the switch through the chain changed event; the
	// local status is updated optimistically so callers see it immediately.
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status.Connected {
		m.status.ChainID = chainID
		m.status.NetworkName = NetworkName(chainID)
	}
	return nil
}

// handleAccountsChanged reacts to account selection changes in the wallet.
// An empty account list means the user disconnected the site.
func (m *Manager) handleAccountsChanged(accounts []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(accounts) == 0 {
		slog.Info("wallet disconnected by user")
		m.disconnectLocked()
		return
	}
	m.status.Address = accounts[0]
	m.status.DisplayAddress = FormatAddress(accounts[0])
}

// handleChainChanged reacts to chain switches made in the wallet itself.
func (m *Manager) handleChainChanged(chainIDHex string) {
	chainID, err := ParseChainID(chainIDHex)
	if err != nil {
		slog.Warn("ignoring malformed chain id from wallet", "chainID", chainIDHex, "err", err)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.status.Connected {
		return
	}
	m.status.ChainID = chainID
	m.status.NetworkName = NetworkName(chainID)
}

func providerMessage(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return fmt.Sprintf("%v", err)
}
