package main

import (
	"fmt"
	"os"

	"github.com/oliverbestmann/infinite/internal/config"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	configPath string
	profile    string

	config *config.Config
	log    *zap.Logger

	stopProfile func()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "infinite",
		Short:        "Tools for the infinite engine core",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.teardown()
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a toml or yaml config file")
	root.PersistentFlags().StringVar(&c.profile, "profile", "", "write a cpu or mem profile to the current directory")

	root.AddCommand(
		newInspectCmd(c),
		newPlayCmd(c),
		newRunCmd(c),
	)

	return root
}

func (c *cli) setup() error {
	cfg := config.Default()

	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	c.config = cfg
	c.log = log

	switch c.profile {
	case "":
	case "cpu":
		c.stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "mem":
		c.stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	default:
		return fmt.Errorf("unknown profile mode %q, expected cpu or mem", c.profile)
	}

	log.Debug("configuration loaded",
		zap.String("path", c.configPath),
		zap.String("assets", cfg.Assets.BasePath),
	)

	return nil
}

func (c *cli) teardown() {
	if c.stopProfile != nil {
		c.stopProfile()
	}

	if c.log != nil {
		_ = c.log.Sync()
	}
}
