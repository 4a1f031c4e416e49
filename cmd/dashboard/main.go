package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/config"
	"github.com/sportsmgr/club-service/internal/observability"
	"github.com/sportsmgr/club-service/pkg/apiclient"
	"github.com/sportsmgr/club-service/pkg/dashboard"
)

func main() {
	email := flag.String("email", "", "sign in with this email")
	password := flag.String("password", "", "sign in with this password")
	logout := flag.Bool("logout", false, "sign out and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	credentialFile := cfg.Client.CredentialFile
	if credentialFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Fatal("cannot resolve home directory", zap.Error(err))
		}
		credentialFile = filepath.Join(home, ".club-dashboard", "credentials.json")
	}
	creds := apiclient.NewFileStore(credentialFile)
	toasts := dashboard.NewToastRelay()

	var session *dashboard.Session
	client := apiclient.New(cfg.Client.APIBaseURL, creds,
		apiclient.WithLogger(logger),
		apiclient.WithSessionExpiredHook(func() { session.HandleSessionExpired() }),
	)

	session = dashboard.NewSession(creds, apiclient.NewAuthService(client), toasts, logger)
	gate := dashboard.NewGate(session)
	store := dashboard.NewStore(dashboard.StoreConfig{
		Players:    apiclient.NewPlayerService(client),
		Teams:      apiclient.NewTeamService(client),
		Matches:    apiclient.NewMatchService(client),
		Tactics:    apiclient.NewTacticService(client),
		Statistics: apiclient.NewStatisticService(client),
		Toasts:     toasts,
		Logger:     logger,
	})

	ctx := context.Background()

	if *logout {
		session.Restore()
		session.Logout(ctx)
		fmt.Println("signed out")
		return
	}

	if session.Restore() == dashboard.StateAuthenticated {
		if err := session.RefreshProfile(ctx); err != nil {
			logger.Warn("profile revalidation failed", zap.Error(err))
		}
	}
	if session.State() != dashboard.StateAuthenticated {
		if *email == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "no saved session; pass -email and -password to sign in")
			os.Exit(1)
		}
		if err := session.Login(ctx, *email, *password); err != nil {
			logger.Fatal("login failed", zap.Error(err))
		}
	}

	user := session.CurrentUser()
	fmt.Printf("signed in as %s %s (%s)\n\n", user.FirstName, user.LastName, user.Role)

	fmt.Println("menu:")
	for _, item := range gate.NavItems() {
		fmt.Printf("  %-12s %s\n", item.Label, item.Route)
	}
	fmt.Println()

	printCollections(ctx, gate, store)

	for _, toast := range toasts.Active() {
		fmt.Printf("[%s] %s\n", toast.Severity, toast.Message)
	}
}

// printCollections lists every collection the role may read. Gate denials
// are skipped rather than reported; the menu never offered those routes.
func printCollections(ctx context.Context, gate *dashboard.Gate, store *dashboard.Store) {
	if gate.Authorize(dashboard.RouteTeams).Allowed {
		if err := store.FetchTeams(ctx); err == nil {
			fmt.Printf("teams: %d\n", len(store.Teams()))
		}
	}
	if gate.Authorize(dashboard.RoutePlayers).Allowed {
		if err := store.FetchPlayers(ctx); err == nil {
			fmt.Printf("players: %d\n", len(store.Players()))
		}
	}
	if gate.Authorize(dashboard.RouteMatches).Allowed {
		if err := store.FetchMatches(ctx); err == nil {
			fmt.Printf("matches: %d\n", len(store.Matches()))
		}
	}
	if gate.Authorize(dashboard.RouteTactics).Allowed {
		if err := store.FetchTactics(ctx); err == nil {
			fmt.Printf("tactics: %d\n", len(store.Tactics()))
		}
	}
	if gate.Authorize(dashboard.RouteStatistics).Allowed {
		if err := store.FetchStatistics(ctx); err == nil {
			fmt.Printf("stat lines: %d\n", len(store.Statistics()))
		}
	}
}
