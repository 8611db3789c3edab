package main

import (
	"codeberg.org/miketth/keymapd/pkg/config"
	"codeberg.org/miketth/keymapd/pkg/keyboards"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"fmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

type dumpOptions struct {
	*globalOptions

	settings bool
}

func newDumpCmd(global *globalOptions) *cobra.Command {
	opts := &dumpOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "dump [keyboard]",
		Short: "Print the layers of a keymap or its saved settings",
		Long: `Prints every layer of the keymap in matrix order. With --settings the
settings saved for the keyboard are printed instead.

The keyboard defaults to the one in the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			name := cfg.Keyboard
			if len(args) == 1 {
				name = args[0]
			}

			if !opts.settings {
				kb, err := keyboards.Lookup(name)
				if err != nil {
					return err
				}
				return dumpKeymap(cmd.OutOrStdout(), kb.Keymap())
			}

			log, _, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.Store.Backend != config.BackendMemory {
				if _, err := os.Stat(cfg.Store.Path); err != nil {
					return fmt.Errorf("no settings store at %s: %w", cfg.Store.Path, err)
				}
			}

			store, err := openStore(cfg.Store, log.Named("settings"))
			if err != nil {
				return err
			}
			defer store.close()

			enabled, err := store.IsEnabled(name)
			if err != nil {
				return fmt.Errorf("check settings: %w", err)
			}
			if !enabled {
				return fmt.Errorf("no settings saved for %s", name)
			}
			stored, err := store.Read(name)
			if err != nil {
				return fmt.Errorf("read settings: %w", err)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(map[string]any{
				"keyboard":      name,
				"default_layer": keymapOf(name).LayerName(stored.DefaultLayer),
				"nkro":          stored.Keymap.NKRO,
				"swap_alt_gui":  stored.Keymap.SwapAltGui,
				"audio":         stored.Audio,
			})
		},
	}

	cmd.Flags().BoolVar(&opts.settings, "settings", false, "print the saved settings instead of the layers")

	return cmd
}

func keymapOf(name string) *keymap.Keymap {
	kb, err := keyboards.Lookup(name)
	if err != nil {
		return &keymap.Keymap{}
	}
	return kb.Keymap()
}

func dumpKeymap(w io.Writer, km *keymap.Keymap) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	for i := range km.Layers {
		fmt.Fprintf(tw, "# %s\n", km.LayerName(uint8(i)))
		for _, row := range km.Layers[i] {
			names := make([]string, len(row))
			for col, kc := range row {
				names[col] = kc.String()
			}
			fmt.Fprintln(tw, strings.Join(names, "\t")+"\t")
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
