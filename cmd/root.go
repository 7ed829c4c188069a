package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/locale"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/systems"
)

type cli struct {
	cfgPath string
	cfg     *config.Config
	log     logger.Logger
	loc     *locale.Localizer
	persist *systems.Persistence
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:                "gamejam",
		Short:              "Game jam toolkit preferences, menus and saves",
		SilenceUsage:       true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}
	root.PersistentFlags().StringVarP(&c.cfgPath, "config", "c", "", "configuration file")
	root.AddCommand(c.prefsCmd(), c.panelCmd(), c.savesCmd(), c.audioCmd())
	return root
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.New("cli").Warnf("Could not load .env file: %v", err)
	}

	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger.New("cli")
	c.loc = loc
	return nil
}

// persistence opens the stores on first use.
func (c *cli) persistence() (*systems.Persistence, error) {
	if c.persist != nil {
		return c.persist, nil
	}
	p, err := systems.OpenPersistence(c.cfg)
	if err != nil {
		return nil, err
	}
	c.persist = p
	return p, nil
}

func (c *cli) teardown(cmd *cobra.Command, args []string) error {
	if c.persist == nil {
		return nil
	}
	err := c.persist.Close()
	c.persist = nil
	if err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	return nil
}
