package cmd

import (
	"fmt"

	"github.com/abhisek/mathgenius/internal/catalog"
	"github.com/abhisek/mathgenius/internal/config"
	"github.com/abhisek/mathgenius/internal/tutor"
	"github.com/spf13/cobra"
)

var tutorsCmd = &cobra.Command{
	Use:   "tutors",
	Short: "List the available tutor personalities",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		list := catalog.Builtins()
		if cfg.CatalogPath != "" {
			loaded, err := catalog.LoadFile(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
			}
			list = loaded
		}

		for _, p := range list {
			fmt.Printf("%s\n", p.Name)
			fmt.Printf("  style: %s\n", p.PreferredStyle)
			fmt.Printf("  patience %.0f%%  friendliness %.0f%%  enthusiasm %.0f%%  formality %.0f%%\n",
				p.Trait(tutor.TraitPatience)*100,
				p.Trait(tutor.TraitFriendliness)*100,
				p.Trait(tutor.TraitEnthusiasm)*100,
				p.Trait(tutor.TraitFormality)*100)
			if len(p.Strategies) > 0 {
				fmt.Printf("  strategies:")
				for _, s := range p.Strategies {
					fmt.Printf(" %s", s)
				}
				fmt.Println()
			}
			fmt.Println()
		}
		return nil
	},
}
