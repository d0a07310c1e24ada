// Command targets demonstrates the target-library API: it creates a golden
// thread target, analyzes an image against it, prints the results summary,
// and deletes the target again.
//
// Usage:
//
//	targets [flags] [image_path]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

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

	target, err := api.CreateTarget(ctx, client.NewTarget{
		Name:                "Example Golden Thread",
		TargetType:          client.TargetGoldenThreadDeviceLevel,
		ReferenceDataSource: "target_type_defaults",
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created target: %s (id: %s)\n", target.Name, target.ID)

	sess := analysis.NewSession(api,
		analysis.WithLogger(logger),
		analysis.WithStorageHTTPClient(httpc),
		analysis.WithPolling(cfg.PollInterval, cfg.MaxPollAttempts),
	)

	summary, err := sess.RunWithTarget(ctx, imagePath, target.ID)
	if err != nil {
		return err
	}
	if err := analysis.WriteReport(os.Stdout, summary); err != nil {
		return err
	}

	if err := api.DeleteTarget(ctx, target.ID); err != nil {
		return err
	}
	fmt.Printf("\nDeleted target %s\n", target.ID)
	return nil
}
