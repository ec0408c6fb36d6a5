package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jinzhu/copier"
	"github.com/tendant/chi-demo/app"
	"golang.org/x/exp/slog"

	appconf "github.com/purevote/purevote/pkg/app"
	"github.com/purevote/purevote/pkg/identity"
	"github.com/purevote/purevote/pkg/join"
	joinapi "github.com/purevote/purevote/pkg/join/api"
	"github.com/purevote/purevote/pkg/notice"
	"github.com/purevote/purevote/pkg/notification"
	"github.com/purevote/purevote/pkg/orgs"
	orgsapi "github.com/purevote/purevote/pkg/orgs/api"
	"github.com/purevote/purevote/pkg/prefs"
	"github.com/purevote/purevote/pkg/session"
	sessionapi "github.com/purevote/purevote/pkg/session/api"
	"github.com/purevote/purevote/pkg/token"
	"github.com/purevote/purevote/pkg/validation"
	"github.com/purevote/purevote/pkg/wallet"
	walletapi "github.com/purevote/purevote/pkg/wallet/api"
)

type WalletConfig struct {
	MockEnabled bool   `env:"PUREVOTE_WALLET_MOCK" env-default:"false"`
	MockAccount string `env:"PUREVOTE_WALLET_MOCK_ACCOUNT" env-default:"0x1234567890abcdef1234567890abcdef12345678"`
	MockChainID string `env:"PUREVOTE_WALLET_MOCK_CHAIN_ID" env-default:"0x1"`
}

type Config struct {
	DbConfig             appconf.DbConfig
	AppConfig            app.AppConfig
	JwtConfig            appconf.JwtConfig
	SmtpConfig           appconf.SmtpConfig
	PasswordPolicyConfig appconf.PasswordPolicyConfig
	SessionConfig        appconf.SessionConfig
	StorageConfig        appconf.StorageConfig
	WalletConfig         WalletConfig
}

func main() {
	config := Config{}
	cleanenv.ReadEnv(&config)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	profileStore, err := appconf.NewProfileStore(context.Background(), config.StorageConfig, config.DbConfig)
	if err != nil {
		slog.Error("Failed creating profile store", "driver", config.StorageConfig.Driver, "err", err)
		os.Exit(-1)
	}

	prefsStore, err := appconf.NewPrefsStore(config.StorageConfig)
	if err != nil {
		slog.Error("Failed creating prefs store", "driver", config.StorageConfig.Driver, "err", err)
		os.Exit(-1)
	}

	// Without an SMTP host, notices land in a mock instead of a mailbox.
	var notificationManager *notification.NotificationManager
	if config.SmtpConfig.Host == "" {
		slog.Warn("SMTP host not configured, using mock notifier")
		notificationManager, _, err = notice.NewMockNotificationManager()
	} else {
		notificationManager, err = notice.NewNotificationManager(config.SmtpConfig.ToSMTPConfig())
	}
	if err != nil {
		slog.Error("Failed creating notification manager", "err", err)
		os.Exit(-1)
	}

	identityProvider := identity.NewInMemoryProvider(
		identity.WithNotificationManager(notificationManager),
		identity.WithResetBaseURL(config.SessionConfig.ResetBaseURL),
	)

	var policy validation.Policy
	copier.Copy(&policy, &config.PasswordPolicyConfig)

	sessionService := session.NewService(identityProvider, profileStore,
		session.WithPolicy(&policy),
		session.WithDemoMode(config.SessionConfig.DemoMode),
	)
	sessionService.Start()
	defer sessionService.Close()

	tokenService := token.NewService(config.JwtConfig.JwtSecret)
	cookieSetter := token.NewCookieSetter(config.JwtConfig.CookieHttpOnly, config.JwtConfig.CookieSecure)
	sessionHandle := sessionapi.NewHandle(sessionService, tokenService, cookieSetter)

	var walletProvider wallet.Provider
	if config.WalletConfig.MockEnabled {
		walletProvider = wallet.NewMockProvider([]string{config.WalletConfig.MockAccount}, config.WalletConfig.MockChainID)
	}
	walletManager := wallet.NewManager(walletProvider)
	walletHandle := walletapi.NewHandle(walletManager)

	orgService := orgs.NewService(orgs.NewInMemoryRepository(orgs.DefaultCatalog()))
	orgsHandle := orgsapi.NewHandle(orgService)

	joinWorkflow := join.NewWorkflow(orgService, notificationManager,
		join.WithReloadFunc(func() {
			slog.Info("membership changed, directory refresh requested")
		}),
	)
	joinHandle := joinapi.NewHandle(joinWorkflow)

	// Signing out tears down the per-user sub-state.
	sessionService.RegisterSignOutHook(walletManager.Disconnect)
	sessionService.RegisterSignOutHook(joinWorkflow.Cancel)

	server.R.Mount("/api/session", sessionapi.Handler(sessionHandle))
	server.R.Mount("/api/orgs", orgsapi.Handler(orgsHandle))

	tokenAuth := jwtauth.New("HS256", []byte(config.JwtConfig.JwtSecret), nil)

	server.R.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))

		r.Mount("/api/wallet", walletapi.Handler(walletHandle))
		r.Mount("/api/join", joinapi.Handler(joinHandle))

		r.Get("/api/me/theme", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := authUserID(r)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, map[string]string{"message": "Invalid session"})
				return
			}
			theme, err := prefsStore.GetTheme(r.Context(), userID)
			if err != nil {
				slog.Error("Failed reading theme", "userID", userID, "err", err)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"message": "Failed to load theme"})
				return
			}
			render.JSON(w, r, map[string]prefs.Theme{"theme": theme})
		})

		r.Put("/api/me/theme", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := authUserID(r)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, map[string]string{"message": "Invalid session"})
				return
			}
			var body struct {
				Theme prefs.Theme `json:"theme"`
			}
			if err := render.DecodeJSON(r.Body, &body); err != nil || (body.Theme != prefs.ThemeDark && body.Theme != prefs.ThemeLight) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, map[string]string{"message": "Theme must be dark or light"})
				return
			}
			if err := prefsStore.SetTheme(r.Context(), userID, body.Theme); err != nil {
				slog.Error("Failed storing theme", "userID", userID, "err", err)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"message": "Failed to store theme"})
				return
			}
			render.JSON(w, r, map[string]prefs.Theme{"theme": body.Theme})
		})
	})

	server.Run()
}

// authUserID extracts the authenticated user id from the verified token.
func authUserID(r *http.Request) (uuid.UUID, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
