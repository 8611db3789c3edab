package main

import (
	"codeberg.org/miketth/keymapd/pkg/keyboards"
	"fmt"
	"github.com/spf13/cobra"
	"strings"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known keyboards and their layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range keyboards.Names() {
				kb, err := keyboards.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(kb.Keymap().LayerNames, ", "))
			}
			return nil
		},
	}
}
