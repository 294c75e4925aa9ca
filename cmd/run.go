package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/mathgenius/internal/app"
	"github.com/abhisek/mathgenius/internal/catalog"
	"github.com/abhisek/mathgenius/internal/config"
	"github.com/abhisek/mathgenius/internal/logging"
	"github.com/abhisek/mathgenius/internal/respond"
	"github.com/abhisek/mathgenius/internal/store"
	"github.com/abhisek/mathgenius/internal/tutor"
	"github.com/abhisek/mathgenius/internal/tutoring"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the tutoring service, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()

	log, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging unavailable:", err)
		log = logging.Nop()
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	personalities, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	var synth *respond.Synthesizer
	if cfg.Seed != 0 {
		synth = respond.New(cfg.Seed)
	}

	svc := tutoring.New(tutoring.Options{
		Profiles:    st.ProfileRepo(),
		Sessions:    st.SessionRepo(),
		Events:      st.EventRepo(),
		Catalog:     personalities,
		Synthesizer: synth,
		Log:         log,
	})

	subject, _ := cmd.Flags().GetString("subject")
	return app.Run(svc, cfg.StudentID, subject)
}

// loadCatalog resolves the personality catalog: --catalog flag, then the
// MATHGENIUS_CATALOG env var, then the built-in set.
func loadCatalog(cmd *cobra.Command, cfg config.Config) ([]tutor.Personality, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Builtins(), nil
	}
	list, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return list, nil
}

func buildLogger(cfg config.Config) (*logging.Logger, error) {
	path := cfg.LogPath
	if path == "" {
		p, err := logging.DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return logging.New(path)
}
