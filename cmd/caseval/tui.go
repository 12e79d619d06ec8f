package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive minor-injury calculator",
	Long: `Run the minor-injury calculator as a full-screen terminal app.
Dollar figures stay masked until contact details are entered, and any
parameter change relocks the view. Captured leads land in the same inbox
as web and CLI unlocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		program := tea.NewProgram(tui.NewModel(st, zap.L()), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return eris.Wrap(err, "run tui")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
