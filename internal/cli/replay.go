package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pinboard"
)

func replayCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "replay <layout.toml> <script.toml>",
		Short: "Apply a pointer script to a layout without a window",
		Long: `Apply a pointer script to a layout without a window, then print the
resulting item tree and verify every board invariant. Waits and screenshots
are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			b, err := loadBoard(args[0], debug, logger)
			if err != nil {
				return err
			}
			r, err := loadScript(args[1])
			if err != nil {
				return err
			}

			session := pinboard.NewSession(b)
			var events int
			session.OnEvent(func(pinboard.CarryEvent) { events++ })
			r.Run(session)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderTree(b))
			if err := b.Verify(); err != nil {
				printError(out, "board is inconsistent")
				return err
			}
			printSuccess(out, "replayed %d steps, %d events, board consistent", r.Len(), events)
			if it := session.Carried(); it != nil {
				printWarning(out, "item #%d is still carried", it.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "verify the board after every operation")
	return cmd
}
