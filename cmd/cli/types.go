package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TestRank-hq/testrank/internal/config"
	"github.com/TestRank-hq/testrank/internal/priority"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List known test types and their scoring profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			scoring, err := config.LoadScoring(cfg.ScoringFile, cfg.BulkWorkers)
			if err != nil {
				return fmt.Errorf("failed to load scoring config: %w", err)
			}
			profiles := priority.NewEnhancer(scoring).Profiles()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tBASE\tMULTIPLIER\tDESCRIPTION")
			for _, typ := range priority.SortedTypes(profiles) {
				p := profiles[typ]
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", typ, p.BasePriority, p.Multiplier, p.Description)
			}
			return w.Flush()
		},
	}

	return cmd
}
