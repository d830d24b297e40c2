package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-storage", "postgres", "-g", "us-west-1", "-e", "http://dynamo:8000",
				"-u", "user", "-p", "password", "-t", "exp", "-k", "todo", "-d", "db",
				"-s", "secret", "-ttl", "60", "-l", "warn",
			},
			expected: &Config{
				HTTPAddr:              "127.0.0.1:9090",
				Storage:               "postgres",
				AWSRegion:             "us-west-1",
				DynamoDBEndpoint:      "http://dynamo:8000",
				AWSAccessKeyID:        "user",
				AWSSecretAccessKey:    "password",
				TableName:             "exp",
				TasksTableName:        "todo",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: time.Hour,
				LogLevel:              "warn",
			},
		},
		{
			name:     "foreign flags ignored, ttl untouched when absent",
			args:     []string{"-c", "cfg.json", "-x", "1", "-s", "k"},
			expected: &Config{SecretKey: "k", TokenValidityDuration: 90 * time.Second},
		},
		{
			name:    "non numeric ttl",
			args:    []string{"-ttl", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{TokenValidityDuration: 90 * time.Second}

			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
