package common

import (
	"context"
	"log"
	"strings"

	"token-ledger-go/internal/journal"
	"token-ledger-go/internal/ledger"
	"token-ledger-go/internal/models"
	"token-ledger-go/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export, docker, etc.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	}
}

type Services struct {
	Ledger  *ledger.Ledger
	Journal *journal.Service
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeServices opens the journal, rebuilds the in-memory ledger from
// it, and wires the journal in as the ledger's event sink.
func InitializeServices(ctx context.Context, cfg *models.Config) (*Services, error) {
	journalService, err := journal.NewService(ctx, cfg.Journal)
	if err != nil {
		return nil, err
	}

	balances, totalSupply, err := journalService.Replay(ctx)
	if err != nil {
		journalService.Close()
		return nil, err
	}

	ledgerService := ledger.New(store.AccountID(cfg.Ledger.MintAuthority), journalService)
	ledgerService.Seed(balances, totalSupply)

	if err := journalService.Reconcile(ctx, ledgerService.TotalSupply()); err != nil {
		zap.L().Warn("Journal reconciliation failed after replay", zap.Error(err))
	}

	journalService.Start(ctx)

	return &Services{
		Ledger:  ledgerService,
		Journal: journalService,
	}, nil
}

func (cs *Services) Close() {
	if cs.Journal != nil {
		cs.Journal.Stop()
		cs.Journal.Close()
	}
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
