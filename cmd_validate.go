package main

import (
	"codeberg.org/miketth/keymapd/pkg/keyboards"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [keyboard...]",
		Short: "Check the config file and the keymaps",
		Long: `Loads the config file and checks every keycode of the named keymaps.
Without arguments all known keymaps are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := global.loadConfig(); err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = keyboards.Names()
			}

			var err error
			for _, name := range names {
				if kbErr := validateKeyboard(name); kbErr != nil {
					err = multierr.Append(err, fmt.Errorf("%s: %w", name, kbErr))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			return err
		},
	}
}

func validateKeyboard(name string) error {
	kb, err := keyboards.Lookup(name)
	if err != nil {
		return err
	}
	return kb.Keymap().Validate(kb.Valid)
}
