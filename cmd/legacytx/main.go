// Command legacytx plans unsigned legacy transactions and inspects raw ones.
//
//	legacytx [options] send <amount> <address>
//	legacytx [options] balance
//	legacytx [options] --decode <hex> [--decode <hex> ...]
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/bitcoin"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/codec"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/command"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/service"
	"github.com/goodnatureofminers/legacytx/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type config struct {
	Network         model.Network `long:"network" env:"LEGACYTX_NETWORK" description:"network for address and script rules" default:"mainnet"`
	FundingTxID     string        `long:"funding-txid" env:"LEGACYTX_FUNDING_TXID" description:"txid of the output to spend"`
	FundingVout     uint32        `long:"funding-vout" env:"LEGACYTX_FUNDING_VOUT" description:"index of the output to spend"`
	FundingValue    uint64        `long:"funding-value" env:"LEGACYTX_FUNDING_VALUE" description:"value of the output to spend, in satoshis"`
	ChangeAddress   string        `long:"change-address" env:"LEGACYTX_CHANGE_ADDRESS" description:"address receiving the remainder of a send"`
	Decode          []string      `long:"decode" description:"hex-encoded transaction to inspect (repeatable)"`
	Workers         int           `long:"workers" env:"LEGACYTX_WORKERS" description:"concurrent decoders for --decode" default:"4"`
	MetricsTextfile string        `long:"metrics-textfile" env:"LEGACYTX_METRICS_TEXTFILE" description:"write prometheus metrics to this file on exit"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	args, err := parseConfig(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	runErr := run(ctx, cfg, args, os.Stdout, logger)

	if cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsTextfile, prometheus.DefaultGatherer); err != nil {
			logger.Error("failed to write metrics", zap.String("path", cfg.MetricsTextfile), zap.Error(err))
		}
	}
	if runErr != nil {
		logger.Fatal("legacytx failed", zap.Error(runErr))
	}
}

// parseConfig stops at the command name; everything after it, including tokens
// such as "-5", belongs to the command parser.
func parseConfig(cfg *config, argv []string) ([]string, error) {
	parser := flags.NewParser(cfg, flags.Default|flags.PassAfterNonOption)
	return parser.ParseArgs(argv)
}

func run(ctx context.Context, cfg config, args []string, out io.Writer, logger *zap.Logger) error {
	txCodec := codec.NewObservedCodec(metrics.NewCodec(cfg.Network))

	if len(cfg.Decode) > 0 {
		return inspect(ctx, cfg, txCodec, out, logger)
	}

	cmd, err := command.Parse(args)
	if err != nil {
		metrics.ObserveCommand("", err)
		return err
	}

	planner, err := newPlanner(cfg, logger)
	if err != nil {
		return err
	}

	switch c := cmd.(type) {
	case command.Send:
		err = send(c, planner, txCodec, out, logger)
		metrics.ObserveCommand("send", err)
	case command.Balance:
		err = balance(planner, out)
		metrics.ObserveCommand("balance", err)
	default:
		err = fmt.Errorf("unhandled command %T", cmd)
	}
	return err
}

func newPlanner(cfg config, logger *zap.Logger) (*service.Planner, error) {
	validator, err := bitcoin.NewAddressValidator(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("init address validator: %w", err)
	}

	var txid chainhash.Hash
	if cfg.FundingTxID != "" {
		parsed, err := chainhash.NewHashFromStr(cfg.FundingTxID)
		if err != nil {
			return nil, fmt.Errorf("parse funding txid: %w", err)
		}
		txid = *parsed
	}

	funding := service.Funding{
		OutPoint: model.NewOutPoint(txid, cfg.FundingVout),
		Value:    cfg.FundingValue,
	}
	return service.NewPlanner(validator, funding, cfg.ChangeAddress, logger), nil
}

func send(c command.Send, planner *service.Planner, txCodec *codec.ObservedCodec, out io.Writer, logger *zap.Logger) error {
	tx, err := planner.Plan(c)
	if err != nil {
		return fmt.Errorf("plan send: %w", err)
	}
	raw, err := txCodec.Encode(tx)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	txid, err := bitcoin.TxHash(tx)
	if err != nil {
		return fmt.Errorf("compute txid: %w", err)
	}

	logger.Info("unsigned transaction built",
		zap.Stringer("txid", txid),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
		zap.Int("size", len(raw)))

	_, err = fmt.Fprintf(out, "txid %s\nraw  %s\n", txid, hex.EncodeToString(raw))
	return err
}

func balance(planner *service.Planner, out io.Writer) error {
	amount, err := planner.Balance()
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	_, err = fmt.Fprintf(out, "balance %s (%d sat)\n", amount, int64(amount))
	return err
}

func inspect(ctx context.Context, cfg config, txCodec *codec.ObservedCodec, out io.Writer, logger *zap.Logger) error {
	scripts, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}

	payloads := make([][]byte, 0, len(cfg.Decode))
	for idx, s := range cfg.Decode {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("payload %d is not hex: %w", idx, err)
		}
		payloads = append(payloads, raw)
	}

	results, err := service.NewInspector(txCodec, scripts, cfg.Workers, logger).Inspect(ctx, payloads)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if err := writeInspection(out, res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payloads rejected", failed, len(results))
	}
	return nil
}
