package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comereal/gamejamtoolkit/locale"
	"github.com/comereal/gamejamtoolkit/prefs"
)

func (c *cli) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and edit stored preferences",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored preferences",
			Args:  cobra.NoArgs,
			RunE:  c.prefsList,
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference",
			Args:  cobra.ExactArgs(1),
			RunE:  c.prefsGet,
		},
		&cobra.Command{
			Use:   "set <key> <int|float|string> <value>",
			Short: "Store a preference",
			Args:  cobra.ExactArgs(3),
			RunE:  c.prefsSet,
		},
		&cobra.Command{
			Use:   "delete <key>",
			Short: "Delete a preference",
			Args:  cobra.ExactArgs(1),
			RunE:  c.prefsDelete,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every preference",
			Args:  cobra.NoArgs,
			RunE:  c.prefsClear,
		},
	)
	return cmd
}

func (c *cli) store() (prefs.Store, error) {
	p, err := c.persistence()
	if err != nil {
		return nil, err
	}
	return p.Prefs, nil
}

func (c *cli) prefsList(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "0\t%s\n", c.loc.LocalizeMessage(locale.PrefsPlaceholder, nil))
	for i, key := range store.Keys() {
		v, _ := prefs.Lookup(store, key)
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", i+1, key, v.Type(), v.Text())
	}
	return nil
}

func (c *cli) prefsGet(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}
	v, ok := prefs.Lookup(store, args[0])
	if !ok {
		return fmt.Errorf("preference %q not found", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Text())
	return nil
}

func (c *cli) prefsSet(cmd *cobra.Command, args []string) error {
	t, err := prefs.ParseDataType(args[1])
	if err != nil {
		return err
	}
	v, err := prefs.ParseValue(t, args[2])
	if err != nil {
		return err
	}
	store, err := c.store()
	if err != nil {
		return err
	}
	if err := prefs.Set(store, args[0], v); err != nil {
		return err
	}
	return store.Save()
}

func (c *cli) prefsDelete(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}
	if !store.HasKey(args[0]) {
		c.log.Warnf("Preference %q not found", args[0])
		return nil
	}
	store.DeleteKey(args[0])
	return store.Save()
}

func (c *cli) prefsClear(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}
	store.DeleteAll()
	return store.Save()
}
