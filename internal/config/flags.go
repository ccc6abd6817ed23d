package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses configuration flags from args on a dedicated FlagSet.
//
// Flags:
//
//	-cloud cloud locker API base URL
//	-bridge device bridge base URL
//	-feed default feed store URL
//	-token signed-in user token
//	-d SQLite DSN
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g. "15s")
//	-reconcile-interval periodic reconciliation interval (e.g. "5m")
//	-sync-timeout device sync wait timeout (e.g. "15s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("locker-sync", flag.ContinueOnError)

	var cloudAddress, bridgeAddress, feedURL, userToken string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout, reconcileInterval, syncTimeout time.Duration

	fs.StringVar(&cloudAddress, "cloud", "", "Cloud locker API base URL")
	fs.StringVar(&bridgeAddress, "bridge", "", "Device bridge base URL")
	fs.StringVar(&feedURL, "feed", "", "Default feed store URL")
	fs.StringVar(&userToken, "token", "", "Signed-in user token")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Periodic reconciliation interval (e.g., 5m)")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Device sync wait timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultFeedURL: feedURL,
			UserToken:      userToken,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			CloudAddress:        cloudAddress,
			DeviceBridgeAddress: bridgeAddress,
			RequestTimeout:      requestTimeout,
		},
		Workers: Workers{
			ReconcileInterval: reconcileInterval,
			DeviceSyncTimeout: syncTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
