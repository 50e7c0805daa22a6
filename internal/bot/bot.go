// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-economy-bot/internal/config"
	"telegram-economy-bot/internal/game/taixiu"
	"telegram-economy-bot/internal/game/wordchain"
	"telegram-economy-bot/internal/handler"
	"telegram-economy-bot/internal/service"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot *tele.Bot
	cfg *config.Config

	accountHandler   *handler.AccountHandler
	transferHandler  *handler.TransferHandler
	shopHandler      *handler.ShopHandler
	gameHandler      *handler.GameHandler
	wordChainHandler *handler.WordChainHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config          *config.Config
	AccountService  *service.AccountService
	TransferService *service.TransferService
	ShopService     *service.ShopService
	TaiXiuGame      *taixiu.Game
	WordChainGame   *wordchain.Game
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot: teleBot,
		cfg: deps.Config,
	}

	b.accountHandler = handler.NewAccountHandler(deps.AccountService)
	b.transferHandler = handler.NewTransferHandler(deps.TransferService)
	b.shopHandler = handler.NewShopHandler(deps.ShopService)
	b.gameHandler = handler.NewGameHandler(deps.TaiXiuGame)
	b.wordChainHandler = handler.NewWordChainHandler(deps.WordChainGame)

	// Settlement reports are pushed by the betting coordinator, not
	// sent as command replies, so it gets a direct send hook.
	deps.TaiXiuGame.SetNotifier(b.Notify)

	b.registerMiddleware()
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(LoggingMiddleware())
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers all command handlers.
func (b *Bot) registerHandlers() {
	// Account
	b.bot.Handle("/balance", b.accountHandler.HandleBalance)
	b.bot.Handle("/status", b.accountHandler.HandleStatus)

	// Transfer
	b.bot.Handle("/give", b.transferHandler.HandleGive)

	// Admin commands
	adminGroup := b.bot.Group()
	adminGroup.Use(AdminMiddleware(b.cfg))
	adminGroup.Handle("/bankset", b.accountHandler.HandleBankSet)

	// Shop
	b.bot.Handle("/shop", b.shopHandler.HandleShop)
	b.bot.Handle("/buy", b.shopHandler.HandleBuy)
	b.bot.Handle("/bag", b.shopHandler.HandleBag)
	b.bot.Handle("/eat", b.shopHandler.HandleEat)

	// Tài-xỉu
	b.bot.Handle("/taixiu", b.gameHandler.HandleTaiXiu)

	// Nối-từ
	b.bot.Handle("/noitu", b.wordChainHandler.HandleStart)
	b.bot.Handle("/stopgame", b.wordChainHandler.HandleStop)
	b.bot.Handle("/score", b.wordChainHandler.HandleScore)

	// Plain text feeds the word-chain session.
	b.bot.Handle(tele.OnText, b.wordChainHandler.HandleText)
}

// Notify sends a message to a chat outside of a command context.
func (b *Bot) Notify(chatID int64, text string) {
	if _, err := b.bot.Send(tele.ChatID(chatID), text); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send notification")
	}
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}
