package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from path into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays values from environment variables.
//
//	PORT                   listening port, becomes ":PORT"
//	HTTP_ADDR              full bind address, wins over PORT
//	STORAGE                dynamodb | postgres | memory
//	AWS_REGION             DynamoDB region
//	DYNAMODB_ENDPOINT      DynamoDB endpoint override
//	AWS_ACCESS_KEY_ID      static AWS credentials
//	AWS_SECRET_ACCESS_KEY
//	TABLE_NAME             expedientes table
//	TASKS_TABLE_NAME       tasks table
//	DATABASE_DSN           PostgreSQL DSN
//	JWT_SECRET             token signing secret
//	TOKEN_TTL              token validity, Go duration syntax
//	LOG_LEVEL              debug | info | warn | error
func parseEnv(c *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if port, ok := lookup("PORT"); ok && port != "" {
		c.HTTPAddr = ":" + port
	}
	str("HTTP_ADDR", &c.HTTPAddr)
	str("STORAGE", &c.Storage)
	str("AWS_REGION", &c.AWSRegion)
	str("DYNAMODB_ENDPOINT", &c.DynamoDBEndpoint)
	str("AWS_ACCESS_KEY_ID", &c.AWSAccessKeyID)
	str("AWS_SECRET_ACCESS_KEY", &c.AWSSecretAccessKey)
	str("TABLE_NAME", &c.TableName)
	str("TASKS_TABLE_NAME", &c.TasksTableName)
	str("DATABASE_DSN", &c.DatabaseDSN)
	str("JWT_SECRET", &c.SecretKey)
	str("LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.TokenValidityDuration = d
	}

	return nil
}
