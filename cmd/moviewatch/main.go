package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/config"
	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/imdb"
	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/movies"
	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/report"
	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/viz"
)

// ============================================================================
// MOVIEWATCH CLI — IMDb Top 100 Movies Analysis
// ============================================================================
// Single linear pipeline: fetch → transform → export CSV → insights →
// visualize → genre leaderboards. The report text goes to stdout; diagnostic
// logging goes to stderr. Any failure is fatal.
// ============================================================================

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	fmt.Println("IMDb Top 100 Movies Analysis")
	fmt.Println("============================")

	fmt.Println("Downloading and processing data...")
	ctx := context.Background()
	client := imdb.NewClient(nil, logger)

	basics, err := client.FetchTable(ctx, cfg.BasicsURL)
	if err != nil {
		logger.Fatal("fetching title basics failed", zap.Error(err))
	}
	ratings, err := client.FetchTable(ctx, cfg.RatingsURL)
	if err != nil {
		logger.Fatal("fetching title ratings failed", zap.Error(err))
	}

	top := movies.TopMovies(basics, ratings)
	logger.Info("transform complete",
		zap.Int("basics_rows", basics.Len()),
		zap.Int("ratings_rows", ratings.Len()),
		zap.Int("ranked", len(top)),
	)

	// CSV first: a later chart failure must still leave the list on disk.
	if err := movies.WriteCSV(top, cfg.CSVPath); err != nil {
		logger.Fatal("saving CSV failed", zap.Error(err))
	}
	fmt.Printf("\nSaved top 100 movies to '%s'\n", cfg.CSVPath)

	view := movies.View(top)

	report.Insights(os.Stdout, view)

	fmt.Println("\nCreating visualizations...")
	if err := viz.Render(view, cfg.ImagePath); err != nil {
		logger.Fatal("rendering visualizations failed", zap.Error(err))
	}
	fmt.Printf("\nSaved visualizations to '%s'\n", cfg.ImagePath)

	report.GenreLeaderboards(os.Stdout, view)

	fmt.Println("\nAnalysis complete! Check the generated files.")
}

// newLogger builds a console logger on stderr. Stdout belongs to the report.
func newLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = " | "

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zapLevel,
	)
	return zap.New(core)
}
