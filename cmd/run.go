package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/app"
	"github.com/vinciapp/vinci/internal/session"
	"github.com/vinciapp/vinci/internal/store"
)

// runApp opens the store, builds the session manager, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(session.NewManager(nil), st.Sessions())
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
