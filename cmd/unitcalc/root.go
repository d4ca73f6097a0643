package main

import (
	"os"

	"github.com/grindlemire/go-unitcalc/internal/config"
	"github.com/grindlemire/go-unitcalc/internal/debug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by subcommands once the root pre-run has loaded
// the configuration.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "unitcalc",
		Short:         "unitcalc resolves responsive layout units",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetVersionTemplate("unitcalc version {{.Version}}\n")

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./unitcalc.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringP("output", "o", "", "output format (table or json)")
	_ = a.v.BindPFlag("logger.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))

	root.AddCommand(newResolveCmd(a), newCheckCmd(a), newVersionCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := debug.Init(cfg.Logger, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("output", cfg.Output))
	return nil
}
