package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comereal/gamejamtoolkit/locale"
)

func (c *cli) savesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage save slots",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List save slots, newest first",
			Args:  cobra.NoArgs,
			RunE:  c.savesList,
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a save slot",
			Args:  cobra.ExactArgs(1),
			RunE:  c.savesDelete,
		},
	)
	return cmd
}

func (c *cli) savesList(cmd *cobra.Command, args []string) error {
	p, err := c.persistence()
	if err != nil {
		return err
	}
	slots, err := p.Saves.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(slots) == 0 {
		fmt.Fprintln(out, c.loc.LocalizeMessage(locale.NoSaves, nil))
		return nil
	}
	for _, s := range slots {
		fmt.Fprintf(out, "%s\t%s\tscene %d\t%s\n", s.ID, s.Name, s.Scene, s.SavedAt.Format(time.RFC3339))
	}
	return nil
}

func (c *cli) savesDelete(cmd *cobra.Command, args []string) error {
	p, err := c.persistence()
	if err != nil {
		return err
	}
	return p.Saves.Delete(args[0])
}
