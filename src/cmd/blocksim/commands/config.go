package commands

import cfg "github.com/blocksimlabs/blocksim/src/config"

//CLIConfig contains configuration for the Run command
type CLIConfig struct {
	Blocksim  cfg.Config     `mapstructure:",squash"`
	Miners    map[string]int `mapstructure:"miners"`
	NonMiners map[string]int `mapstructure:"non-miners"`
	SendTxs   int            `mapstructure:"send-txs"`
	LogFiles  bool           `mapstructure:"log-files"`
}

//NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Blocksim:  *cfg.NewDefaultConfig(),
		Miners:    map[string]int{"ohio": 1, "ireland": 1},
		NonMiners: map[string]int{"tokyo": 2},
		SendTxs:   10,
		LogFiles:  false,
	}
}
