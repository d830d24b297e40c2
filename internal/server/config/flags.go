package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/expedientes/internal/flagx"
)

var ownFlags = []string{"-a", "-storage", "-g", "-e", "-u", "-p", "-t", "-k", "-d", "-s", "-ttl", "-l"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        HTTP bind address (e.g. ":3001")
//	-storage string  dynamodb | postgres | memory
//	-g string        AWS region
//	-e string        DynamoDB endpoint override
//	-u string        AWS access key id
//	-p string        AWS secret access key
//	-t string        expedientes table name
//	-k string        tasks table name
//	-d string        PostgreSQL DSN
//	-s string        JWT HMAC secret key
//	-ttl int         token validity, minutes
//	-l string        log level
//
// Arguments are filtered with flagx.Filter first, so -c / -config and
// foreign flags do not break parsing.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.Storage, "storage", config.Storage, "storage backend")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.DynamoDBEndpoint, "e", config.DynamoDBEndpoint, "DynamoDB endpoint")
	fs.StringVar(&config.AWSAccessKeyID, "u", config.AWSAccessKeyID, "AWS access key id")
	fs.StringVar(&config.AWSSecretAccessKey, "p", config.AWSSecretAccessKey, "AWS secret access key")
	fs.StringVar(&config.TableName, "t", config.TableName, "expedientes table")
	fs.StringVar(&config.TasksTableName, "k", config.TasksTableName, "tasks table")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	ttl := fs.Int("ttl", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(flagx.Filter(args, ownFlags...)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "ttl" {
			config.TokenValidityDuration = time.Duration(*ttl) * time.Minute
		}
	})
	return nil
}
