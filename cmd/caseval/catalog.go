package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/config"
	"github.com/gregglawdallas/caseval/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and tune the calculator tables",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active calculator tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		std, err := st.GetStandardConfig(cmd.Context())
		if err != nil {
			return err
		}
		serious, err := st.GetSeriousConfig(cmd.Context())
		if err != nil {
			return err
		}
		death, err := st.GetDeathConfig(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(struct {
			Standard domain.StandardCalculatorConfig `json:"standard"`
			Serious  domain.SeriousCalculatorConfig  `json:"serious"`
			Death    domain.WrongfulDeathConfig      `json:"wrongfulDeath"`
		}{std, serious, death})
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the active tables to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		std, err := st.GetStandardConfig(cmd.Context())
		if err != nil {
			return err
		}
		serious, err := st.GetSeriousConfig(cmd.Context())
		if err != nil {
			return err
		}
		death, err := st.GetDeathConfig(cmd.Context())
		if err != nil {
			return err
		}
		benchmarks, err := st.ListBenchmarks(cmd.Context())
		if err != nil {
			return err
		}

		bundle := &config.CatalogFile{
			Standard:   &std,
			Serious:    &serious,
			Death:      &death,
			Benchmarks: benchmarks,
		}
		if err := config.NewCatalogParser().SaveToFile(args[0], bundle); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported catalog to %s\n", args[0])
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tables from a YAML file (omitted sections keep current values)",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := config.NewCatalogParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if bundle.Standard != nil {
			if err := st.SaveStandardConfig(ctx, *bundle.Standard); err != nil {
				return err
			}
		}
		if bundle.Serious != nil {
			for _, warning := range bundle.Serious.TierOrderingWarnings() {
				zap.L().Warn("catalog import", zap.String("warning", warning))
			}
			if err := st.SaveSeriousConfig(ctx, *bundle.Serious); err != nil {
				return err
			}
		}
		if bundle.Death != nil {
			if err := st.SaveDeathConfig(ctx, *bundle.Death); err != nil {
				return err
			}
		}
		if bundle.Benchmarks != nil {
			if err := st.ReplaceBenchmarks(ctx, bundle.Benchmarks); err != nil {
				return err
			}
		}

		fmt.Fprintf(os.Stdout, "Imported catalog from %s\n", args[0])
		return nil
	},
	Args: cobra.ExactArgs(1),
}

var catalogResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every calculator table to the shipped defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ResetConfigs(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Calculator tables reset to defaults")
		return nil
	},
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Manage settlement benchmarks",
}

var (
	benchmarkInjury string
	benchmarkText   string
)

var benchmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settlement benchmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		benchmarks, err := st.ListBenchmarks(cmd.Context())
		if err != nil {
			return err
		}
		if len(benchmarks) == 0 {
			fmt.Fprintln(os.Stdout, "No benchmarks recorded.")
			return nil
		}
		for _, b := range benchmarks {
			fmt.Fprintf(os.Stdout, "%s  %-12s %s  %s\n", b.ID, b.InjuryID, b.DateAdded, b.Text)
		}
		return nil
	},
}

var benchmarkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a settlement benchmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		added, err := st.AddBenchmark(cmd.Context(), domain.SettlementBenchmark{
			InjuryID: benchmarkInjury,
			Text:     benchmarkText,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Added benchmark %s\n", added.ID)
		return nil
	},
}

var benchmarkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a settlement benchmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteBenchmark(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted benchmark %s\n", args[0])
		return nil
	},
}

func init() {
	benchmarkAddCmd.Flags().StringVar(&benchmarkInjury, "injury", "", "injury type id the benchmark applies to")
	benchmarkAddCmd.Flags().StringVar(&benchmarkText, "text", "", "benchmark description")
	benchmarkAddCmd.MarkFlagRequired("injury")
	benchmarkAddCmd.MarkFlagRequired("text")

	benchmarkCmd.AddCommand(benchmarkListCmd)
	benchmarkCmd.AddCommand(benchmarkAddCmd)
	benchmarkCmd.AddCommand(benchmarkDeleteCmd)

	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogResetCmd)
	catalogCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(catalogCmd)
}
