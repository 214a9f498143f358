package commands

import (
	"testing"

	cfg "github.com/blocksimlabs/blocksim/src/config"
)

func TestNewDefaultCLIConfig(t *testing.T) {
	cliConfig := NewDefaultCLIConfig()

	if cliConfig.Blocksim.Blockchain != cfg.DefaultBlockchain {
		t.Fatalf("blockchain should default to %s, not %s",
			cfg.DefaultBlockchain, cliConfig.Blocksim.Blockchain)
	}
	if cliConfig.Blocksim.SimDuration != cfg.DefaultSimDuration {
		t.Fatalf("duration should default to %v, not %v",
			float64(cfg.DefaultSimDuration), cliConfig.Blocksim.SimDuration)
	}
	if cliConfig.SendTxs != 10 {
		t.Fatalf("send-txs should default to 10, not %d", cliConfig.SendTxs)
	}

	// The package-level config is built from the same defaults.
	if config.Blocksim.Blockchain != cliConfig.Blocksim.Blockchain {
		t.Fatalf("package config should carry the defaults")
	}
}
