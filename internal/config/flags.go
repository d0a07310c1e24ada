package config

import (
	"flag"
	"os"
	"time"

	"github.com/imagezebra/imagezebra-go/internal/flagx"
)

// valueFlags lists every flag that consumes a separate value argument,
// including the config-file flags handled by flagx.JsonConfigFlags.
var valueFlags = []string{"-b", "-k", "-u", "-p", "-i", "-n", "-t", "-c", "-config"}

// ValueFlags returns the flags that take values, for callers that need to
// locate positional arguments (see flagx.FirstPositional).
func ValueFlags() []string {
	return valueFlags
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   API base URL
//	-k string   application key
//	-u string   username
//	-p string   password
//	-i int      poll interval in seconds
//	-n int      maximum number of polls
//	-t int      per-request timeout in seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the positional image argument and the config-file
// flags pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-k", "-u", "-p", "-i", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "API base URL")
	fs.StringVar(&cfg.ApplicationKey, "k", cfg.ApplicationKey, "application key")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "username")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "password")

	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "poll interval (in seconds)")
	maxAttempts := fs.Uint64("n", cfg.MaxPollAttempts, "maximum number of polls")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "per-request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
	cfg.MaxPollAttempts = *maxAttempts
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
