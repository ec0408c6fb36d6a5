package wallet

import (
	"context"
	"sync"
)

// MockProvider is a scripted wallet backend for tests and the demo command.
type MockProvider struct {
	mu             sync.Mutex
	accounts       []string
	chainIDHex     string
	accountsErr    error
	chainErr       error
	switchErr      error
	switchCalls    []string
	acctListeners  map[int]func([]string)
	chainListeners map[int]func(string)
	nextSub        int
}

// NewMockProvider creates a MockProvider granting the given accounts on the
// given chain.
func NewMockProvider(accounts []string, chainIDHex string) *MockProvider {
	return &MockProvider{
		accounts:       accounts,
		chainIDHex:     chainIDHex,
		acctListeners:  map[int]func([]string){},
		chainListeners: map[int]func(string){},
	}
}

// SetAccountsError scripts a RequestAccounts failure.
func (m *MockProvider) SetAccountsError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountsErr = err
}

// SetSwitchError scripts a SwitchChain failure.
func (m *MockProvider) SetSwitchError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.switchErr = err
}

// SwitchCalls returns the chain ids SwitchChain was called with.
func (m *MockProvider) SwitchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.switchCalls...)
}

func (m *MockProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.accountsErr != nil {
		return nil, m.accountsErr
	}
	return append([]string{}, m.accounts...), nil
}

func (m *MockProvider) RequestChainID(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.chainErr != nil {
		return "", m.chainErr
	}
	return m.chainIDHex, nil
}

func (m *MockProvider) SwitchChain(ctx context.Context, chainIDHex string) error {
	m.mu.Lock()
	m.switchCalls = append(m.switchCalls, chainIDHex)
	err := m.switchErr
	if err == nil {
		m.chainIDHex = chainIDHex
	}
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.EmitChainChanged(chainIDHex)
	return nil
}

func (m *MockProvider) OnAccountsChanged(fn func([]string)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.acctListeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.acctListeners, id)
	}
}

func (m *MockProvider) OnChainChanged(fn func(string)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.chainListeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.chainListeners, id)
	}
}

// EmitAccountsChanged pushes an account change to all listeners.
func (m *MockProvider) EmitAccountsChanged(accounts []string) {
	m.mu.Lock()
	m.accounts = append([]string{}, accounts...)
	listeners := make([]func([]string), 0, len(m.acctListeners))
	for _, fn := range m.acctListeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(accounts)
	}
}

// EmitChainChanged pushes a chain change to all listeners.
func (m *MockProvider) EmitChainChanged(chainIDHex string) {
	m.mu.Lock()
	m.chainIDHex = chainIDHex
	listeners := make([]func(string), 0, len(m.chainListeners))
	for _, fn := range m.chainListeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(chainIDHex)
	}
}
