package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tableforge/tableforge/internal/catalog"
	"github.com/tableforge/tableforge/internal/config"
	"github.com/tableforge/tableforge/internal/engine"
	"github.com/tableforge/tableforge/internal/model"
)

// loadConfig reads the config file named by --config, falling back to the
// defaults when the flag is unset or the file does not exist.
func loadConfig() (*config.YAMLConfig, error) {
	if cfgFile == "" {
		if _, err := os.Stat("tableforge.yaml"); err == nil {
			return config.LoadYAMLConfig("tableforge.yaml")
		}
		return config.DefaultYAMLConfig(), nil
	}
	return config.LoadYAMLConfig(cfgFile)
}

// newEngine builds an Engine from the loaded config, honoring per-command
// dialect and seed overrides when non-zero.
func newEngine(cfg *config.YAMLConfig, dialectOverride string, seedOverride int64) (*engine.Engine, error) {
	opts := engine.Options{
		Dialect: cfg.Generate.Dialect,
		Seed:    cfg.Generate.Seed,
		Logger:  setupLogger(cfg.Logging),
	}
	if dialectOverride != "" {
		opts.Dialect = dialectOverride
	}
	if seedOverride != 0 {
		opts.Seed = seedOverride
	}
	if cfg.Catalog.File != "" {
		cat, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		opts.Catalog = cat
	}
	return engine.New(opts)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	logLevel := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

// loadSchema reads a schema definition from a YAML (or JSON, which YAML
// subsumes) file, or from stdin when path is "-".
func loadSchema(path string) (model.TableSchema, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.TableSchema{}, fmt.Errorf("read schema: %w", err)
	}
	var schema model.TableSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return model.TableSchema{}, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// writeOutput writes content to a file, or to w when outputFile is empty.
func writeOutput(w io.Writer, outputFile, content string) error {
	if outputFile == "" {
		_, err := fmt.Fprintln(w, content)
		return err
	}
	return os.WriteFile(outputFile, []byte(content+"\n"), 0644)
}

// printSchema writes a schema to stdout as YAML.
func printSchema(w io.Writer, schema model.TableSchema) error {
	data, err := yaml.Marshal(schema)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
