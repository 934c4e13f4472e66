package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const configFilePathENV = "CONFIG_FILE"

type Config struct {
	// Trading
	Symbol          string  `yaml:"symbol"`           // SYMBOL (BTCUSDT)
	IntervalMinutes int     `yaml:"interval_minutes"` // INTERVAL_MINUTES (1)
	StartBalance    float64 `yaml:"start_balance"`    // START_BALANCE (10)
	MinOrderUSDT    float64 `yaml:"min_order_usdt"`   // MIN_ORDER_USDT (5)
	PaperMode       bool    `yaml:"paper_mode"`       // PAPER_MODE (true); live is not implemented

	// Market data
	BaseURL    string `yaml:"base_url"`    // BITGET_BASE_URL
	HistoryCap int    `yaml:"history_cap"` // HISTORY_CAP (500)
	RSIPeriod  int    `yaml:"rsi_period"`  // RSI_PERIOD (14)

	// News sentiment
	NewsQuery  string `yaml:"news_query"` // NEWS_QUERY (bitcoin)
	NewsAPIKey string `yaml:"-"`          // NEWSAPI_KEY; sentiment is off without it

	// Telegram
	TelegramBotToken string `yaml:"-"` // TELEGRAM_BOT_TOKEN
	TelegramChatID   int64  `yaml:"-"` // TELEGRAM_CHAT_ID

	// Service
	HealthAddr string `yaml:"health_addr"` // HEALTH_ADDR (:8080)
	JaegerHost string `yaml:"-"`           // JAEGER_HOST; tracing off when empty
	JaegerPort int    `yaml:"-"`           // JAEGER_PORT (6831)
}

// Load builds the config from defaults, an optional yaml base file pointed
// at by CONFIG_FILE, and finally the environment. Env always wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Symbol:          "BTCUSDT",
		IntervalMinutes: 1,
		StartBalance:    10,
		MinOrderUSDT:    5,
		PaperMode:       true,
		BaseURL:         "https://api.bitget.com",
		HistoryCap:      500,
		RSIPeriod:       14,
		NewsQuery:       "bitcoin",
		HealthAddr:      ":8080",
		JaegerPort:      6831,
	}

	if name := os.Getenv(configFilePathENV); name != "" {
		file, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "open config file %s", name)
		}
		err = yaml.NewDecoder(file).Decode(cfg)
		_ = file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "decode config file %s", name)
		}
	}

	cfg.Symbol = getenvDefault("SYMBOL", cfg.Symbol)
	cfg.IntervalMinutes = intFromEnv("INTERVAL_MINUTES", cfg.IntervalMinutes)
	cfg.StartBalance = floatFromEnv("START_BALANCE", cfg.StartBalance)
	cfg.MinOrderUSDT = floatFromEnv("MIN_ORDER_USDT", cfg.MinOrderUSDT)
	cfg.PaperMode = boolFromEnv("PAPER_MODE", cfg.PaperMode)
	cfg.BaseURL = getenvDefault("BITGET_BASE_URL", cfg.BaseURL)
	cfg.HistoryCap = intFromEnv("HISTORY_CAP", cfg.HistoryCap)
	cfg.RSIPeriod = intFromEnv("RSI_PERIOD", cfg.RSIPeriod)
	cfg.NewsQuery = getenvDefault("NEWS_QUERY", cfg.NewsQuery)
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.HealthAddr = getenvDefault("HEALTH_ADDR", cfg.HealthAddr)
	cfg.JaegerHost = os.Getenv("JAEGER_HOST")
	cfg.JaegerPort = intFromEnv("JAEGER_PORT", cfg.JaegerPort)

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	if cfg.IntervalMinutes < 1 {
		cfg.IntervalMinutes = 1
	}
	if cfg.HistoryCap < 1 {
		cfg.HistoryCap = 500
	}
	if !cfg.PaperMode {
		return nil, fmt.Errorf("PAPER_MODE=false: live trading is not implemented")
	}
	if cfg.StartBalance <= 0 {
		return nil, fmt.Errorf("START_BALANCE must be positive, got %v", cfg.StartBalance)
	}

	return cfg, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
