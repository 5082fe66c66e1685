package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{Telegram: &TelegramConfig{Token: "token"}}

	applyDefaults(cfg)

	if cfg.Telegram.APIEndpoint != "https://api.telegram.org" {
		t.Fatalf("APIEndpoint = %q", cfg.Telegram.APIEndpoint)
	}
	if cfg.Telegram.PageSize != 5 {
		t.Fatalf("PageSize = %d, want 5", cfg.Telegram.PageSize)
	}
	if cfg.Reminder.Interval != time.Minute {
		t.Fatalf("Reminder.Interval = %s, want 1m", cfg.Reminder.Interval)
	}
	if cfg.Reminder.DefaultDays != 3 {
		t.Fatalf("Reminder.DefaultDays = %d, want 3", cfg.Reminder.DefaultDays)
	}
	if cfg.Storage.ImagesDir != "images" {
		t.Fatalf("Storage.ImagesDir = %q", cfg.Storage.ImagesDir)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Telegram: &TelegramConfig{Token: "token", PageSize: 10},
		Reminder: &ReminderConfig{Interval: time.Hour, DefaultDays: 7},
		Storage:  &StorageConfig{ImagesDir: "/var/lib/shipnotify/images"},
	}

	applyDefaults(cfg)

	if cfg.Telegram.PageSize != 10 {
		t.Fatalf("PageSize = %d, want 10", cfg.Telegram.PageSize)
	}
	if cfg.Reminder.DefaultDays != 7 {
		t.Fatalf("Reminder.DefaultDays = %d, want 7", cfg.Reminder.DefaultDays)
	}
	if cfg.Storage.ImagesDir != "/var/lib/shipnotify/images" {
		t.Fatalf("Storage.ImagesDir = %q", cfg.Storage.ImagesDir)
	}
}
