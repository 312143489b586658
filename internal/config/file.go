// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the configuration file.
// The same shape is accepted as JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Version       string `json:"version" yaml:"version"`
		AdminEmail    string `json:"admin_email" yaml:"admin_email"`
		AdminPassword string `json:"admin_password" yaml:"admin_password"`
	} `json:"app" yaml:"app"`
	Storage struct {
		DB struct {
			Driver       string `json:"driver" yaml:"driver"`
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`
	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`
	Audit struct {
		Log         bool   `json:"log" yaml:"log"`
		NATSURL     string `json:"nats_url" yaml:"nats_url"`
		NATSSubject string `json:"nats_subject" yaml:"nats_subject"`
	} `json:"audit" yaml:"audit"`
	Workers struct {
		ProbeInterval Duration `json:"probe_interval" yaml:"probe_interval"`
	} `json:"workers" yaml:"workers"`
}

// Duration is a time.Duration that decodes from a Go duration string
// ("15s", "1m") in both JSON and YAML.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a quoted duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

// UnmarshalYAML accepts a scalar duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		d.Duration = 0
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	d.Duration = parsed
	return nil
}

// parseFile reads the config file at path and converts it to a
// StructuredConfig. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML config: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error parsing JSON config: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Version:       fileCfg.App.Version,
			AdminEmail:    fileCfg.App.AdminEmail,
			AdminPassword: fileCfg.App.AdminPassword,
		},
		Storage: Storage{
			DB: DB{
				Driver:       fileCfg.Storage.DB.Driver,
				DSN:          fileCfg.Storage.DB.DSN,
				MaxOpenConns: fileCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			GRPCAddress:    fileCfg.Server.GRPCAddress,
			RequestTimeout: fileCfg.Server.RequestTimeout.Duration,
		},
		Audit: Audit{
			Log:         fileCfg.Audit.Log,
			NATSURL:     fileCfg.Audit.NATSURL,
			NATSSubject: fileCfg.Audit.NATSSubject,
		},
		Workers: Workers{
			ProbeInterval: fileCfg.Workers.ProbeInterval.Duration,
		},
	}, nil
}
