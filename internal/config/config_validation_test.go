package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Version: "1", AdminEmail: "admin@mail.co", AdminPassword: "123456"},
		Storage: Storage{DB: DB{Driver: DriverMemory}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Workers: Workers{ProbeInterval: time.Second},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "blank admin email",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminEmail = "  " },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty admin password",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminPassword = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "redis" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "grpc only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:    "no listener",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero probe interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.ProbeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
