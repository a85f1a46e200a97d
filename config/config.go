package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	LoggerMode LoggerMode
	Market     Market
	Lightning  Lightning
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

// Market holds the custody-marketplace tunables. Cooldown and TTL are
// policy, not protocol, so they are always read from config.
type Market struct {
	// FingerprintSecret keys the one-way xpub digest. The keyguard fails
	// closed when it is empty.
	FingerprintSecret string

	// EncryptionKey protects xpubs at rest, hex-encoded 32 bytes.
	EncryptionKey string

	// SignatureCooldown is the mandatory delay between signature-request
	// creation and release eligibility.
	SignatureCooldown time.Duration

	// RequestTTL bounds how long an unpaid request may sit before the
	// expiry sweep may reap it.
	RequestTTL time.Duration

	// PurchaseRetention bounds how long a never-activated purchase is kept.
	PurchaseRetention time.Duration
}

type Lightning struct {
	// Mode selects the backend: "mock" or "lnurl".
	Mode string

	// VerifyURL is the LNURL-verify base, the payment reference is appended.
	VerifyURL string

	// InvoiceURL is the LNURL-pay callback used to request invoices.
	InvoiceURL string

	Timeout       time.Duration
	RetryAttempts int
	RetryBaseWait time.Duration
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}

	if c.Market.SignatureCooldown <= 0 {
		c.Market.SignatureCooldown = time.Hour
	}
	if c.Market.RequestTTL <= 0 {
		c.Market.RequestTTL = 72 * time.Hour
	}
	if c.Market.PurchaseRetention <= 0 {
		c.Market.PurchaseRetention = 24 * time.Hour
	}
	if c.Lightning.Mode == "" {
		c.Lightning.Mode = "mock"
	}
	if c.Lightning.Timeout <= 0 {
		c.Lightning.Timeout = 10 * time.Second
	}
	if c.Lightning.RetryAttempts <= 0 {
		c.Lightning.RetryAttempts = 3
	}
	if c.Lightning.RetryBaseWait <= 0 {
		c.Lightning.RetryBaseWait = 500 * time.Millisecond
	}

	return &c, nil
}
