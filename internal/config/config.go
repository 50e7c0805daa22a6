// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot       BotConfig       `mapstructure:"bot"`
	Data      DataConfig      `mapstructure:"data"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Whitelist WhitelistConfig `mapstructure:"whitelist"`
	Rewards   RewardsConfig   `mapstructure:"rewards"`
	Games     GamesConfig     `mapstructure:"games"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// DataConfig holds file paths for persisted state.
type DataConfig struct {
	SaveFile       string `mapstructure:"save_file"`
	DictionaryFile string `mapstructure:"dictionary_file"`
}

// AdminConfig holds admin user configuration.
type AdminConfig struct {
	IDs []int64 `mapstructure:"ids"`
}

// WhitelistConfig holds chat whitelist configuration.
type WhitelistConfig struct {
	Chats []int64 `mapstructure:"chats"`
}

// RewardsConfig holds word-chain reward amounts (whole xu).
type RewardsConfig struct {
	CoinPerWord int64 `mapstructure:"coin_per_word"`
	WinBonus    int64 `mapstructure:"win_bonus"`
	LevelBonus  int64 `mapstructure:"level_bonus"`
}

// GamesConfig holds game-specific configuration.
type GamesConfig struct {
	TaiXiu TaiXiuConfig `mapstructure:"taixiu"`
}

// TaiXiuConfig holds tài-xỉu betting configuration.
type TaiXiuConfig struct {
	MaxBet           int64 `mapstructure:"max_bet"`
	BetWindowSeconds int   `mapstructure:"bet_window_seconds"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, DATA_SAVE_FILE, GAMES_TAIXIU_MAX_BET.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can provide everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets the default deployment values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.save_file", "save.txt")
	v.SetDefault("data.dictionary_file", "text2.txt")

	v.SetDefault("rewards.coin_per_word", 5)
	v.SetDefault("rewards.win_bonus", 20)
	v.SetDefault("rewards.level_bonus", 50)

	v.SetDefault("games.taixiu.max_bet", 250000)
	v.SetDefault("games.taixiu.bet_window_seconds", 45)
}

// IsAdmin checks if a user ID is in the admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admin.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsChatAllowed checks if a chat ID is in the whitelist.
func (c *Config) IsChatAllowed(chatID int64) bool {
	// Empty whitelist means all chats are allowed.
	if len(c.Whitelist.Chats) == 0 {
		return true
	}
	for _, id := range c.Whitelist.Chats {
		if id == chatID {
			return true
		}
	}
	return false
}

// MaxBetDecimal returns the tài-xỉu bet cap as an exact decimal.
func (c *Config) MaxBetDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.Games.TaiXiu.MaxBet)
}

// CoinPerWordDecimal returns the per-word reward as an exact decimal.
func (c *Config) CoinPerWordDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.Rewards.CoinPerWord)
}

// WinBonusDecimal returns the word-chain victory bonus.
func (c *Config) WinBonusDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.Rewards.WinBonus)
}

// LevelBonusDecimal returns the level-up bonus.
func (c *Config) LevelBonusDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.Rewards.LevelBonus)
}
