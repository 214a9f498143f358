package commands

import (
	"os"

	cfg "github.com/blocksimlabs/blocksim/src/config"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	config = NewDefaultCLIConfig()
	logger *logrus.Logger
)

//RootCmd is the root command for blocksim
var RootCmd = &cobra.Command{
	Use:              "blocksim",
	Short:            "blockchain network simulator",
	TraverseChildren: true,
}

//loadConfig reads the blocksim config file from the datadir, if there is
//one, and merges it with the flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	logger = newLogger()

	if datadir, err := cmd.Flags().GetString("datadir"); err == nil && datadir != "" {
		config.Blocksim.SetDataDir(datadir)
	}

	viper.AddConfigPath(config.Blocksim.DataDir)
	viper.SetConfigName("blocksim")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		logger.Debugf("No config file found in: %s", config.Blocksim.DataDir)
	} else {
		return err
	}

	if err := viper.Unmarshal(config); err != nil {
		return err
	}

	logger.Level = cfg.LogLevel(config.Blocksim.LogLevel)

	// The engine builds its Entry from the config, so the hooked logger has
	// to be injected here for the log-files option to capture simulation
	// output.
	config.Blocksim.SetLogger(logger)

	return nil
}

//newLogger builds the process logger, hooking info and debug output into
//log files when log-files is set.
func newLogger() *logrus.Logger {
	logger := logrus.New()

	if !config.LogFiles {
		return logger
	}

	pathMap := lfshook.PathMap{}

	_, err := os.OpenFile("blocksim_info.log", os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		logger.Info("Failed to open blocksim_info.log file, using default stderr")
	} else {
		pathMap[logrus.InfoLevel] = "blocksim_info.log"
	}

	_, err = os.OpenFile("blocksim_debug.log", os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		logger.Info("Failed to open blocksim_debug.log file, using default stderr")
	} else {
		pathMap[logrus.DebugLevel] = "blocksim_debug.log"
	}

	logger.Hooks.Add(lfshook.NewHook(
		pathMap,
		&logrus.TextFormatter{},
	))

	return logger
}
