package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/peerbid/marketplace/bids"
	"github.com/peerbid/marketplace/broker"
	"github.com/peerbid/marketplace/certificates"
	"github.com/peerbid/marketplace/config"
	"github.com/peerbid/marketplace/escrow"
	"github.com/peerbid/marketplace/fee"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/markettime"
	"github.com/peerbid/marketplace/metrics"
	"github.com/peerbid/marketplace/orders"
	"github.com/peerbid/marketplace/registry"
	"github.com/peerbid/marketplace/settlement"
	"github.com/peerbid/marketplace/subscribers"
)

const defaultConfigPath = "marketd.toml"

func initCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Write(path, config.NewDefaultConfig())
		},
	}
	cmd.Flags().StringVar(&path, "config", defaultConfigPath, "path of the configuration file to write")
	return cmd
}

func runCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the settlement core",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Read(path)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&path, "config", defaultConfigPath, "path of the configuration file to load")
	return cmd
}

func run(cfg *config.Config) error {
	log := logging.NewLoggerFromEnv(cfg.Logging.Environment)
	defer log.AtExit()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bkr := broker.New(log, cfg.Broker)
	escrowLedger := subscribers.NewEscrowLedger(log)
	bkr.Subscribe(escrowLedger)

	store := registry.New(log, bkr)
	minter := certificates.New(log)
	vault := escrow.NewVault(log)

	bidLedger := bids.New(log, cfg.Bids, bkr, store)
	orderLedger := orders.New(log, cfg.Orders, bkr)
	feeEngine := fee.New(log, cfg.Fee)
	engine := settlement.New(
		log, cfg.Settlement, bkr,
		bidLedger, orderLedger, feeEngine,
		store, minter, vault, settlement.NoComposables{},
		common.HexToAddress(cfg.Operator),
	)

	timeSvc := markettime.New(cfg.Time, bkr)
	timeSvc.NotifyOnTick(bidLedger.OnTick, engine.OnTick)
	timeSvc.SetTimeNow(ctx, time.Now())

	metrics.Start(log, cfg.Metrics)

	// drive the logical clock off wall time until shutdown
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	log.Info("marketplace core started")
	for {
		select {
		case t := <-ticker.C:
			timeSvc.SetTimeNow(ctx, t)
		case <-sig:
			log.Info("shutting down")
			return nil
		}
	}
}
