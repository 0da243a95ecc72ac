package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/airbusgeo/s2cogs/downloader"
	"github.com/airbusgeo/s2cogs/interface/storage"
	"github.com/airbusgeo/s2cogs/service"
	"github.com/airbusgeo/s2cogs/service/log"
	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
)

const version = "0.2.0"

type config struct {
	BucketURI          string `env:"BUCKET_URI"`
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-west-2"`
	AWSEndpoint        string `env:"AWS_ENDPOINT"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	NoSSL              bool   `env:"NO_SSL"`
	GSAnonymous        bool   `env:"GS_ANONYMOUS" envDefault:"true"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

func newAppConfig() (*config, error) {
	cfg := config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "S2COGS_"}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.BucketURI == "" {
		cfg.BucketURI = downloader.DefaultBucketURI
	}
	return &cfg, nil
}

func (c *config) storageConfig() storage.Config {
	return storage.Config{
		Region:          c.AWSRegion,
		Endpoint:        c.AWSEndpoint,
		AccessKeyID:     c.AWSAccessKeyID,
		SecretAccessKey: c.AWSSecretAccessKey,
		NoSSL:           c.NoSSL,
		GSAnonymous:     c.GSAnonymous,
	}
}

func main() {
	ctx := context.Background()
	config, err := newAppConfig()
	if err != nil {
		log.Fatal("error", zap.Error(err))
	}
	if err := log.SetLevel(config.LogLevel); err != nil {
		log.Fatal("error", zap.Error(err))
	}

	if err := run(ctx, config, os.Args[1:], os.Stdout); err != nil {
		log.Logger(ctx).Error("s2cogs failed", zap.Error(err), zap.Bool("temporary", service.Temporary(err)))
		os.Exit(exitCode(err))
	}
}

// run executes the command line args and writes the results to stdout
func run(ctx context.Context, config *config, args []string, stdout io.Writer) error {
	rootCmd := newRootCmd(config)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if cmd, found := strings.CutPrefix(err.Error(), "unknown command "); found {
			return service.MakeFatal(service.ErrUnknownOption{Option: cmd})
		}
		return err
	}
	return nil
}

// exitCode is 2 when the command line must be fixed, 1 otherwise
func exitCode(err error) int {
	if service.Fatal(err) {
		return 2
	}
	return 1
}
