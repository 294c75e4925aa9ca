package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/mathgenius/internal/config"
	"github.com/abhisek/mathgenius/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentEvents(cmd.Context(), 20)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-20s %-6s %-10s %-10s %-8s\n", "WHEN", "EVENT", "MESSAGES", "ENGAGEMENT", "LENGTH")
		for _, e := range events {
			engagement := "-"
			length := "-"
			messages := "-"
			if e.Action == "end" {
				engagement = fmt.Sprintf("%.0f%%", e.Engagement*100)
				length = (time.Duration(e.DurationSecs) * time.Second).String()
				messages = fmt.Sprintf("%d", e.TotalMessages)
			}
			fmt.Printf("%-20s %-6s %-10s %-10s %-8s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Action, messages, engagement, length)
		}
		return nil
	},
}
