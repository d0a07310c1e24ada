// Command analyze demonstrates the core ImageZebra workflow: authenticate,
// obtain a presigned upload URL, upload an image to object storage, request
// analysis, and poll for the results summary.
//
// Usage:
//
//	analyze [flags] [image_path]
//
// The optional positional argument defaults to the bundled sample image.
// Credentials come from IMAGEZEBRA_* environment variables (or .env, a JSON
// config file, or flags); a missing password is prompted for when stdin is a
// terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/imagezebra/imagezebra-go/internal/analysis"
	"github.com/imagezebra/imagezebra-go/internal/cli"
	"github.com/imagezebra/imagezebra-go/internal/client"
	"github.com/imagezebra/imagezebra-go/internal/config"
	"github.com/imagezebra/imagezebra-go/internal/flagx"
	"github.com/imagezebra/imagezebra-go/internal/logging"
)

const defaultImagePath = "images/low_res_GT_A.jpg"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.LoadConfig()

	imagePath := flagx.FirstPositional(os.Args[1:], config.ValueFlags())
	if imagePath == "" {
		imagePath = defaultImagePath
	}

	if cfg.Password == "" && cli.IsTerminal() {
		pw, err := cli.GetPassword(os.Stderr)
		if err != nil {
			return err
		}
		cfg.Password = pw
	}

	httpc := &http.Client{Timeout: cfg.RequestTimeout}
	api, err := client.New(ctx, cfg.BaseURL, client.Credentials{
		ApplicationKey: cfg.ApplicationKey,
		Username:       cfg.Username,
		Password:       cfg.Password,
	}, client.WithHTTPClient(httpc), client.WithLogger(logger))
	if err != nil {
		return err
	}

	ud, err := api.UserData(ctx)
	if err != nil {
		return err
	}
	if strings.EqualFold(ud.TierName, "platinum") {
		fmt.Println("User has no restrictions on uploads as a platinum tier subscriber (API rate limits apply)")
	} else {
		fmt.Printf("User has %d remaining uploads this billing period\n", ud.AnalysisBalance)
	}

	sess := analysis.NewSession(api,
		analysis.WithLogger(logger),
		analysis.WithStorageHTTPClient(httpc),
		analysis.WithPolling(cfg.PollInterval, cfg.MaxPollAttempts),
	)

	summary, err := sess.Run(ctx, imagePath)
	if err != nil {
		return err
	}

	return analysis.WriteReport(os.Stdout, summary)
}
