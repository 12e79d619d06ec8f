package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/output"
	"github.com/gregglawdallas/caseval/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage the captured-lead inbox",
}

var (
	leadsSource string
	leadsLimit  int
	leadsJSON   bool
)

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured leads, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		leads, err := st.ListLeads(cmd.Context(), store.LeadFilter{
			Source: domain.CalculatorSource(leadsSource),
			Limit:  leadsLimit,
		})
		if err != nil {
			return err
		}

		if leadsJSON {
			return printJSON(leads)
		}

		if len(leads) == 0 {
			fmt.Fprintln(os.Stdout, "No leads captured yet.")
			return nil
		}
		for _, lead := range leads {
			fmt.Fprintf(os.Stdout, "%s  %s  %-12s %-20s %s  %s\n",
				lead.ID,
				lead.Timestamp.Format("2006-01-02 15:04"),
				lead.CalculatorSource,
				lead.Name,
				lead.Phone,
				output.FormatCurrency(lead.Valuation.Net))
		}
		return nil
	},
}

var leadsExportFile string

var leadsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export leads as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		leads, err := st.ListLeads(cmd.Context(), store.LeadFilter{
			Source: domain.CalculatorSource(leadsSource),
		})
		if err != nil {
			return err
		}

		data, err := output.LeadsCSV(leads)
		if err != nil {
			return err
		}

		if leadsExportFile == "" || leadsExportFile == "-" {
			fmt.Fprint(os.Stdout, string(data))
			return nil
		}
		if err := os.WriteFile(leadsExportFile, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", leadsExportFile)
		}
		fmt.Fprintf(os.Stdout, "Exported %d leads to %s\n", len(leads), leadsExportFile)
		return nil
	},
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteLead(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted lead %s\n", args[0])
		return nil
	},
}

var leadsArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Move a lead to the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ArchiveLead(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Archived lead %s\n", args[0])
		return nil
	},
}

var leadsRecoverCmd = &cobra.Command{
	Use:   "recover <id>",
	Short: "Restore an archived lead to the inbox",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.RecoverLead(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Recovered lead %s\n", args[0])
		return nil
	},
}

var leadsArchiveListCmd = &cobra.Command{
	Use:   "archive-list",
	Short: "List archived leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		archived, err := st.ListArchive(cmd.Context())
		if err != nil {
			return err
		}

		if leadsJSON {
			return printJSON(archived)
		}

		if len(archived) == 0 {
			fmt.Fprintln(os.Stdout, "Archive is empty.")
			return nil
		}
		for _, entry := range archived {
			fmt.Fprintf(os.Stdout, "%s  archived %s  %-20s %s\n",
				entry.ID,
				entry.ArchivedAt.Format("2006-01-02 15:04"),
				entry.Data.Name,
				output.FormatCurrency(entry.Data.Valuation.Net))
		}
		return nil
	},
}

var leadsClearArchiveCmd = &cobra.Command{
	Use:   "clear-archive",
	Short: "Permanently delete every archived lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ClearArchive(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Cleared %d archived leads\n", n)
		return nil
	},
}

func init() {
	leadsCmd.PersistentFlags().StringVar(&leadsSource, "source", "", "filter by calculator source (minor, serious, estate, beneficiary)")
	leadsCmd.PersistentFlags().BoolVar(&leadsJSON, "json", false, "output JSON")
	leadsListCmd.Flags().IntVar(&leadsLimit, "limit", 0, "maximum rows (0 for all)")
	leadsExportCmd.Flags().StringVar(&leadsExportFile, "file", "-", "output file (- for stdout)")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsExportCmd)
	leadsCmd.AddCommand(leadsDeleteCmd)
	leadsCmd.AddCommand(leadsArchiveCmd)
	leadsCmd.AddCommand(leadsRecoverCmd)
	leadsCmd.AddCommand(leadsArchiveListCmd)
	leadsCmd.AddCommand(leadsClearArchiveCmd)
	rootCmd.AddCommand(leadsCmd)
}
