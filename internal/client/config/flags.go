package config

import (
	"flag"
	"os"
	"time"

	"github.com/eministar/nebidash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags, short and long forms:
//
//	-a, --server string      base URL of the dashboard API (default from Config)
//	-t, --timeout int        request timeout in seconds (default from Config)
//	-d, --downloads string   download directory for exports (default from Config)
//	-s, --session string     session file path (default from Config)
//
// Only these flags are parsed here; os.Args is filtered through
// flagx.FilterArgs so cobra's own arguments pass through untouched.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-t", "-d", "-s",
		"--server", "--timeout", "--downloads", "--session",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	timeoutSeconds := int(cfg.RequestTimeout.Seconds())

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the dashboard API")
	fs.StringVar(&cfg.ServerBaseURL, "server", cfg.ServerBaseURL, "base URL of the dashboard API")
	fs.IntVar(&timeoutSeconds, "t", timeoutSeconds, "request timeout (in seconds)")
	fs.IntVar(&timeoutSeconds, "timeout", timeoutSeconds, "request timeout (in seconds)")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory for exports")
	fs.StringVar(&cfg.DownloadDir, "downloads", cfg.DownloadDir, "download directory for exports")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")
	fs.StringVar(&cfg.SessionFile, "session", cfg.SessionFile, "session file path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(timeoutSeconds) * time.Second
	return nil
}
