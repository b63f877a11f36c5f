package main

import (
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pstankie/ft5dgen/internal/fetcher"
	"github.com/pstankie/ft5dgen/internal/maidenhead"
	"github.com/pstankie/ft5dgen/internal/pipeline"
)

var (
	generateOutput   string
	generateStatic   string
	generateURL      string
	generateNoHeader bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <locator> <max-km>",
	Short: "Generate the ADMS-14 memory CSV",
	Long: `Generates the FT-5D memory file from the przemienniki.net directory.

Takes the reference Maidenhead locator and the maximum distance in
kilometers; repeaters outside that range are dropped.

Examples:
  # Repeaters within 100 km of Krakow
  ft5dgen generate JO90KS 100

  # Custom output, no header row (merge-capable variant)
  ft5dgen generate JO90KS 50 --output mychannels.csv --no-header`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := maidenhead.ToPoint(args[0])
		if err != nil {
			return eris.Wrapf(err, "generate: reference locator %q", args[0])
		}

		maxKm, err := strconv.ParseFloat(args[1], 64)
		if err != nil || maxKm <= 0 {
			return eris.Errorf("generate: max distance %q must be a positive number", args[1])
		}

		if generateOutput != "" {
			cfg.Output.Path = generateOutput
		}
		if generateStatic != "" {
			cfg.Static.Path = generateStatic
		}
		if generateURL != "" {
			cfg.Feed.URL = generateURL
		}
		if generateNoHeader {
			cfg.Output.Header = false
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.Feed.UserAgent,
			Timeout:   time.Duration(cfg.Feed.TimeoutSecs) * time.Second,
		})

		zap.L().Info("generating memory file",
			zap.String("locator", args[0]),
			zap.Float64("max_km", maxKm),
			zap.String("url", cfg.Feed.URL),
		)

		summary, err := pipeline.New(f, cfg).Run(cmd.Context(), ref, maxKm)
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		zap.L().Info("done",
			zap.Int("channels", summary.Mapped+summary.Static),
			zap.String("output", cfg.Output.Path),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "output CSV path (default from config)")
	generateCmd.Flags().StringVar(&generateStatic, "static", "", "static channel CSV to merge (default from config)")
	generateCmd.Flags().StringVar(&generateURL, "url", "", "feed URL override")
	generateCmd.Flags().BoolVar(&generateNoHeader, "no-header", false, "omit the header row (merge-capable variant)")
	rootCmd.AddCommand(generateCmd)
}
