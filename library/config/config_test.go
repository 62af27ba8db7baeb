package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig_validate(t *testing.T) {
	valid := Config{
		Storage: StorageMemory,
		Loan:    Loan{Period: 14 * 24 * time.Hour, MaxRenewals: 2},
	}
	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "unknown storage", modify: func(c *Config) { c.Storage = "redis" }},
		{name: "zero period", modify: func(c *Config) { c.Loan.Period = 0 }},
		{name: "negative renewals", modify: func(c *Config) { c.Loan.MaxRenewals = -1 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			require.Error(t, c.validate())
		})
	}
}
