package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/logging"
	"github.com/ytget/flexlab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger, _, err := logging.New(logging.Options{
		Dir:    config.DefaultLogsDir,
		Prefix: "analyze_modulus",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ui.Launch(version, nil, logger)
}
