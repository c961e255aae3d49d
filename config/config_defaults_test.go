package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, defaultGuestOrderBurst, cfg.RateLimit.GuestOrders.Burst)
	assert.Nil(t, cfg.Kafka)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{AccessTokenTTL: time.Minute, MinPasswordLength: 12},
		Pagination: &PaginationConfig{DefaultLimit: 20, MaxLimit: 50},
		Kafka:      &KafkaConfig{Brokers: []string{"localhost:9092"}},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 12, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, "order-events", cfg.Kafka.Topic)
	assert.Equal(t, "order-timeline", cfg.Kafka.GroupID)
}

func TestKafkaConfig_Enabled(t *testing.T) {
	var nilCfg *KafkaConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&KafkaConfig{}).Enabled())
	assert.True(t, (&KafkaConfig{Brokers: []string{"kafka:9092"}}).Enabled())
}
