package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/expedientes/internal/flagx"
	"github.com/dmitrijs2005/expedientes/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept both "24h" strings and integer nanoseconds.
type JsonConfig struct {
	HTTPAddr              string         `json:"http_addr"`
	Storage               string         `json:"storage"`
	AWSRegion             string         `json:"aws_region"`
	DynamoDBEndpoint      string         `json:"dynamodb_endpoint"`
	AWSAccessKeyID        string         `json:"aws_access_key_id"`
	AWSSecretAccessKey    string         `json:"aws_secret_access_key"`
	TableName             string         `json:"table_name"`
	TasksTableName        string         `json:"tasks_table_name"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config. Fields
// missing from the file keep their current value. Without the flag nothing
// is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&config.HTTPAddr, c.HTTPAddr)
	set(&config.Storage, c.Storage)
	set(&config.AWSRegion, c.AWSRegion)
	set(&config.DynamoDBEndpoint, c.DynamoDBEndpoint)
	set(&config.AWSAccessKeyID, c.AWSAccessKeyID)
	set(&config.AWSSecretAccessKey, c.AWSSecretAccessKey)
	set(&config.TableName, c.TableName)
	set(&config.TasksTableName, c.TasksTableName)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SecretKey, c.SecretKey)
	set(&config.LogLevel, c.LogLevel)

	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}

	return nil
}
