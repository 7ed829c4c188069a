package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/comereal/gamejamtoolkit/locale"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/comereal/gamejamtoolkit/settings"
)

func (c *cli) panelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Work with settings panel definitions",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate [file]",
			Short: "Check a panel file for duplicate keys and report normalization",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.panelValidate,
		},
		&cobra.Command{
			Use:   "apply [file]",
			Short: "Write the panel defaults to the preference store",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.panelApply,
		},
		&cobra.Command{
			Use:   "keys [file]",
			Short: "List the preference keys a panel registers",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.panelKeys,
		},
		&cobra.Command{
			Use:   "remove <file> <index>",
			Short: "Delete the stored value of the key at index (as listed by keys)",
			Args:  cobra.ExactArgs(2),
			RunE:  c.panelRemove,
		},
	)
	return cmd
}

// loadSettings reads the settings panel from path, or from the configured
// settings file when path is empty.
func (c *cli) loadSettings(args []string) (*panel.SettingsDefinition, error) {
	path := c.cfg.Panels.Settings
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no panel file given and panels.settings is not configured")
	}
	f, err := panel.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if f.Settings == nil {
		return nil, fmt.Errorf("%s: no settings panel", path)
	}
	return f.Settings, nil
}

// explainDuplicate prints the duplicate-key dialog for err, if it is one.
func (c *cli) explainDuplicate(w io.Writer, err error) {
	var dup *settings.DuplicateKeyError
	if !errors.As(err, &dup) {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", c.loc.LocalizeMessage(locale.DuplicateKeyTitle, nil), c.loc.LocalizeMessage(locale.DuplicateKeyBody, nil))
	fmt.Fprintln(w, c.loc.LocalizeMessage(locale.DuplicateKeyDetail, map[string]any{
		"Key":    dup.Key,
		"First":  dup.First,
		"Second": dup.Second,
	}))
}

func (c *cli) panelValidate(cmd *cobra.Command, args []string) error {
	def, err := c.loadSettings(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := def.ValidateKeys(); err != nil {
		c.explainDuplicate(out, err)
		return err
	}

	for i, before := range def.Controls {
		after := before
		after.Normalize()
		if after.DataType != before.DataType {
			fmt.Fprintf(out, "control %d (%s): type %s -> %s\n", i, before.Key, before.DataType, after.DataType)
		}
		if !after.Default.Equal(before.Default) {
			fmt.Fprintf(out, "control %d (%s): default %s -> %s\n", i, before.Key, before.Default, after.Default)
		}
		if after.SliderMin != before.SliderMin || after.SliderMax != before.SliderMax {
			fmt.Fprintf(out, "control %d (%s): bounds [%g, %g] -> [%g, %g]\n", i, before.Key,
				before.SliderMin, before.SliderMax, after.SliderMin, after.SliderMax)
		}
	}
	fmt.Fprintf(out, "ok: %d controls\n", len(def.Controls))
	return nil
}

func (c *cli) panelApply(cmd *cobra.Command, args []string) error {
	def, err := c.loadSettings(args)
	if err != nil {
		return err
	}
	store, err := c.store()
	if err != nil {
		return err
	}
	reg := settings.New(store, logger.New("settings"))
	if _, err := def.Build(reg, c.log); err != nil {
		c.explainDuplicate(cmd.OutOrStdout(), err)
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d preferences\n", reg.Len())
	return nil
}

// dryRegistry builds def against a throwaway store to get the key listing.
func (c *cli) dryRegistry(cmd *cobra.Command, def *panel.SettingsDefinition) (*settings.Registry, error) {
	reg := settings.New(prefs.NewMemoryStore(), c.log)
	if _, err := def.Build(reg, c.log); err != nil {
		c.explainDuplicate(cmd.OutOrStdout(), err)
		return nil, err
	}
	return reg, nil
}

func (c *cli) panelKeys(cmd *cobra.Command, args []string) error {
	def, err := c.loadSettings(args)
	if err != nil {
		return err
	}
	reg, err := c.dryRegistry(cmd, def)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "0\t%s\n", c.loc.LocalizeMessage(locale.PrefsPlaceholder, nil))
	for i, k := range reg.Keys() {
		fmt.Fprintf(out, "%d\t%s\t%s\n", i+1, k.Key, k.Type)
	}
	return nil
}

func (c *cli) panelRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index %q: %w", args[1], err)
	}
	if index == 0 {
		// The placeholder row selects nothing
		return nil
	}
	def, err := c.loadSettings(args[:1])
	if err != nil {
		return err
	}
	reg, err := c.dryRegistry(cmd, def)
	if err != nil {
		return err
	}
	keys := reg.Keys()
	if !reg.RemovePlayerPref(index - 1) {
		return fmt.Errorf("index %d out of range (1-%d)", index, len(keys))
	}
	key := keys[index-1].Key

	store, err := c.store()
	if err != nil {
		return err
	}
	store.DeleteKey(key)
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
	return nil
}
