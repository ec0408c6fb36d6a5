package main

import (
	"context"
	"os"

	"github.com/tendant/chi-demo/app"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/identity"
	"github.com/purevote/purevote/pkg/join"
	joinapi "github.com/purevote/purevote/pkg/join/api"
	"github.com/purevote/purevote/pkg/notice"
	"github.com/purevote/purevote/pkg/orgs"
	orgsapi "github.com/purevote/purevote/pkg/orgs/api"
	"github.com/purevote/purevote/pkg/profile"
	"github.com/purevote/purevote/pkg/session"
	sessionapi "github.com/purevote/purevote/pkg/session/api"
	"github.com/purevote/purevote/pkg/token"
	"github.com/purevote/purevote/pkg/wallet"
	walletapi "github.com/purevote/purevote/pkg/wallet/api"
)

// Self-contained demo: in-memory stores, a mock notifier instead of SMTP,
// a scripted wallet, and a join flow that accepts any six digit code.
func main() {
	myApp := app.DefaultApp()

	notificationManager, mockNotifier, err := notice.NewMockNotificationManager()
	if err != nil {
		slog.Error("Failed creating notification manager", "err", err)
		os.Exit(-1)
	}

	identityProvider := identity.NewInMemoryProvider(
		identity.WithNotificationManager(notificationManager),
	)
	profileStore := profile.NewInMemoryStore()

	// Seed before the session service subscribes, so the seeding sign-in
	// does not authenticate the fresh session.
	seedDemoAccount(identityProvider)

	sessionService := session.NewService(identityProvider, profileStore)
	sessionService.Start()
	defer sessionService.Close()

	tokenService := token.NewService("demo-secret")
	cookieSetter := token.NewCookieSetter(true, false)
	sessionHandle := sessionapi.NewHandle(sessionService, tokenService, cookieSetter)

	walletProvider := wallet.NewMockProvider(
		[]string{"0x1234567890abcdef1234567890abcdef12345678"},
		"0x1",
	)
	walletManager := wallet.NewManager(walletProvider)
	walletHandle := walletapi.NewHandle(walletManager)

	orgService := orgs.NewService(orgs.NewInMemoryRepository(orgs.DefaultCatalog()))
	orgsHandle := orgsapi.NewHandle(orgService)

	joinWorkflow := join.NewWorkflow(orgService, notificationManager,
		join.WithVerifier(join.AcceptAllVerifier{}),
		join.WithReloadFunc(func() {
			slog.Info("demo join completed", "noticesSent", len(mockNotifier.SentNotifications))
		}),
	)
	joinHandle := joinapi.NewHandle(joinWorkflow)

	sessionService.RegisterSignOutHook(walletManager.Disconnect)
	sessionService.RegisterSignOutHook(joinWorkflow.Cancel)

	myApp.R.Mount("/api/session", sessionapi.Handler(sessionHandle))
	myApp.R.Mount("/api/orgs", orgsapi.Handler(orgsHandle))
	myApp.R.Mount("/api/wallet", walletapi.Handler(walletHandle))
	myApp.R.Mount("/api/join", joinapi.Handler(joinHandle))

	myApp.Run()
}

func seedDemoAccount(provider *identity.InMemoryProvider) {
	ctx := context.Background()
	user, err := provider.CreateAccount(ctx, "demo@purevote.example.com", "demo-password")
	if err != nil {
		slog.Error("Failed seeding demo account", "err", err)
		return
	}
	if err := provider.UpdateDisplayName(ctx, user.UserID, "Demo User"); err != nil {
		slog.Error("Failed naming demo account", "err", err)
	}
	slog.Info("Demo account ready", "email", "demo@purevote.example.com", "password", "demo-password")
}
