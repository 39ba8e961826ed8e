// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultOTPDuration    = 10 * time.Minute
	defaultBcryptCost     = 10
	defaultHTTPAddress    = ":5000"
	defaultRequestTimeout = 30 * time.Second
	defaultMailerPort     = 587
	defaultMailQueueSize  = 100
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://bvcdigitalhub.vercel.app",
}

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.OTPDuration == 0 {
		cfg.App.OTPDuration = defaultOTPDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}

	if cfg.Server.HTTPAddress == "" {
		if cfg.Port != "" {
			cfg.Server.HTTPAddress = ":" + cfg.Port
		} else {
			cfg.Server.HTTPAddress = defaultHTTPAddress
		}
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), defaultAllowedOrigins...)
	}

	if cfg.Mailer.Port == 0 {
		cfg.Mailer.Port = defaultMailerPort
	}
	if cfg.Mailer.From == "" {
		cfg.Mailer.From = cfg.Mailer.Username
	}

	if cfg.Workers.MailQueueSize == 0 {
		cfg.Workers.MailQueueSize = defaultMailQueueSize
	}
}
