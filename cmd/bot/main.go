// Package main is the entry point for the Telegram economy bot.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"telegram-economy-bot/internal/bot"
	"telegram-economy-bot/internal/config"
	"telegram-economy-bot/internal/game/taixiu"
	"telegram-economy-bot/internal/game/wordchain"
	"telegram-economy-bot/internal/ledger"
	"telegram-economy-bot/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Open the ledger store and load the snapshot from disk.
	store := ledger.New(cfg.Data.SaveFile)
	if err := store.Load(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.SaveFile).Msg("Failed to load save file")
	}
	defer store.Close()

	// Load the word-chain dictionary. A missing file disables the game
	// but does not stop the bot.
	dict := wordchain.LoadDictionary(cfg.Data.DictionaryFile)

	// Initialize services
	accountService := service.NewAccountService(store, cfg.CoinPerWordDecimal(), cfg.LevelBonusDecimal())
	transferService := service.NewTransferService(store)
	shopService := service.NewShopService(store)

	// Initialize games
	betWindow := time.Duration(cfg.Games.TaiXiu.BetWindowSeconds) * time.Second
	taiXiuGame := taixiu.New(store, betWindow, cfg.MaxBetDecimal())
	wordChainGame := wordchain.NewGame(dict, accountService, cfg.WinBonusDecimal())

	// Create bot dependencies
	deps := &bot.Dependencies{
		Config:          cfg,
		AccountService:  accountService,
		TransferService: transferService,
		ShopService:     shopService,
		TaiXiuGame:      taiXiuGame,
		WordChainGame:   wordChainGame,
	}

	// Initialize bot
	telegramBot, err := bot.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown; the deferred store.Close flushes the snapshot.
	telegramBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
}
