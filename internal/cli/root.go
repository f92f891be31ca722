// Package cli wires flags, config, and logging into the interpreter.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"simplesh/internal/config"
	"simplesh/internal/shell"
)

const version = "1.0.0"

var (
	cfgPath string
	prompt  string
	debug   bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "simplesh",
	Short: "A minimal interactive command interpreter",
	Long: `simplesh reads a line, splits it on whitespace, and either runs one of
its builtins (cd, help, echo, exit) in-process or launches the named
program as a foreground child, waiting for it to finish.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = config.DefaultPath()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		// flags beat the config file
		if cmd.Flags().Changed("prompt") {
			cfg.Prompt = prompt
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug = debug
		}

		if cfg.Debug {
			zcfg := zap.NewDevelopmentConfig()
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
		} else {
			logger = zap.NewNop()
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := shell.New(os.Stdin, os.Stdout, os.Stderr,
			shell.WithPrompt(cfg.Prompt),
			shell.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		shell.NewInterruptRelay(s.Child(), os.Stdout, logger).Start()

		return s.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.simplesh.yaml)")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "", "prompt string")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}
