package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/shop-calendar/internal/config"
	"github.com/username/shop-calendar/internal/render"
)

var (
	configPath string
	logFile    string
	logLevel   string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shop-calendar",
		Short: "Monthly business-hours calendar image generator",
		Long:  "Render a monthly business-hours calendar as a 1080x1350 PNG for social media posts, driven by a JSON config",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile != "" {
				var err error
				logger, err = initFileLogger(logFile, logLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ./config.json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of the console")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level for file logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(createCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Render the calendar image from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			path, err := generate(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("✓ calendar image generated: %s\n", path)
			fmt.Printf("  %d-%02d / 1080x1350px\n", cfg.Year, cfg.Month)
			return nil
		},
	}
}

// generate renders one calendar image and returns the output path. Font
// resources are released when the render finishes, on success or failure.
func generate(cfg *config.Config) (string, error) {
	fonts, err := render.LoadFonts(cfg, logger)
	if err != nil {
		return "", fmt.Errorf("failed to load fonts: %w", err)
	}
	defer fonts.Close()

	composer := render.NewComposer(cfg, fonts, logger)

	path := cfg.OutputPath()
	if err := composer.RenderToFile(path); err != nil {
		return "", fmt.Errorf("failed to render calendar: %w", err)
	}

	return path, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
