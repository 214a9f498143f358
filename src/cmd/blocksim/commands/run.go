package commands

import (
	"fmt"

	"github.com/blocksimlabs/blocksim/src/blocksim"
	"github.com/blocksimlabs/blocksim/src/chain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//NewRunCmd returns the command that runs a simulation
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run a simulation",
		PreRunE: loadConfig,
		RunE:    runBlocksim,
	}

	AddRunFlags(cmd)

	return cmd
}

//AddRunFlags adds flags to the Run command
func AddRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("datadir", "d", config.Blocksim.DataDir, "Top-level directory for configuration and data")
	cmd.Flags().String("log", config.Blocksim.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.Flags().String("blockchain", config.Blocksim.Blockchain, "Simulated blockchain (bitcoin, ethereum)")
	cmd.Flags().Float64("duration", config.Blocksim.SimDuration, "Simulation duration in virtual-time units")
	cmd.Flags().Bool("store", config.Blocksim.Store, "Use badgerDB instead of in-mem chain store")
	cmd.Flags().String("db", config.Blocksim.DatabaseDir, "Directory for the badger database")
	cmd.Flags().Int("send-txs", config.SendTxs, "Number of transactions to broadcast during the run")
	cmd.Flags().Bool("log-files", config.LogFiles, "Write info and debug logs to files")
}

func runBlocksim(cmd *cobra.Command, args []string) error {
	logger.WithFields(logrus.Fields{
		"datadir":    config.Blocksim.DataDir,
		"log":        config.Blocksim.LogLevel,
		"blockchain": config.Blocksim.Blockchain,
		"duration":   config.Blocksim.SimDuration,
		"store":      config.Blocksim.Store,
		"miners":     config.Miners,
		"non-miners": config.NonMiners,
		"send-txs":   config.SendTxs,
	}).Debug("RUN")

	engine := blocksim.NewBlocksim(&config.Blocksim)

	if err := engine.Init(config.Miners, config.NonMiners); err != nil {
		return err
	}

	if len(engine.Nodes) == 0 {
		return fmt.Errorf("no nodes to simulate")
	}

	// Seed the gossip workload: transactions originate from the nodes in
	// round-robin order.
	for i := 0; i < config.SendTxs; i++ {
		origin := engine.Nodes[i%len(engine.Nodes)]
		tx := chain.NewTransaction(
			fmt.Sprintf("to-%d", i),
			origin.Address(),
			int64(i),
			"",
			int64(i),
			10,
		)
		if err := engine.BroadcastTransaction(origin, tx); err != nil {
			return err
		}
	}

	engine.Run()

	return nil
}
