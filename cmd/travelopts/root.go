package main

import (
	"github.com/katalvlaran/travelopts/internal/config"
	"github.com/katalvlaran/travelopts/internal/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the resolved settings to every subcommand.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "travelopts",
		Short:         "Pareto frontiers of (price, time) travel options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Open(a.v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logx.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.travelopts.yaml)")
	flags.String("log-level", "info", "logging level (debug|info|warn|error|fatal|panic)")
	flags.String("log-format", "pretty", "log format (json|pretty)")
	flags.Int("precision", 2, "decimals printed in option tables")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("display.precision", flags.Lookup("precision"))

	root.AddCommand(
		newDemoCmd(a),
		newShowCmd(a),
		newPruneCmd(a),
		newUnionCmd(a),
		newJoinCmd(a),
		newSplitCmd(a),
		newGenerateCmd(),
	)

	return root
}
