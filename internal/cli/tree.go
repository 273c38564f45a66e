package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <layout.toml>",
		Short: "Print the item tree of a layout",
		Long: `Print the item tree of a layout. Each container shows the container that
holds it in the containment index, which differs from its parent when it
sticks out of the parent's box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0], false, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTree(b))
			return nil
		},
	}
}
