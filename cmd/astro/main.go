package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"astro-observer/internal/client/api"
	"astro-observer/internal/client/session"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app bundles the shared client state every command needs.
type app struct {
	api     *api.Client
	session *session.Session
}

var (
	successText = color.New(color.FgGreen)
	errorText   = color.New(color.FgRed)
	infoText    = color.New(color.FgCyan)
)

func main() {
	creds := session.NewCredentialStore(session.DefaultCredentialPath())
	apiClient := api.NewClient(serverURL(), creds.Read)
	a := &app{
		api:     apiClient,
		session: session.New(apiClient, creds),
	}

	rootCmd := &cobra.Command{
		Use:   "astro",
		Short: "AstroObserver: galaxy classification, constellation recognition and plate solving from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			a.session.Initialize(ctx)
		},
	}

	rootCmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newHomeCmd(a),
		newGalaxyCmd(a),
		newConstellationCmd(a),
		newPositioningCmd(a),
		newChatCmd(a),
		newSpaceEngineCmd(a),
	)

	if err := rootCmd.Execute(); err != nil {
		errorText.Fprintf(os.Stderr, "astro: %v\n", err)
		os.Exit(1)
	}
}

func serverURL() string {
	if url := os.Getenv("ASTRO_SERVER_URL"); url != "" {
		return url
	}
	return "http://localhost:5000"
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 90*time.Second)
}

func printKeyValue(key string, value interface{}) {
	fmt.Printf("  %-14s %v\n", key+":", value)
}
