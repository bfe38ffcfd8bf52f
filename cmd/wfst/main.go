// Command wfst converts a GeoJSON FeatureCollection into a WFS-T 2.0
// transaction document.
//
// Usage:
//
//	wfst -action insert -config config.yaml -input features.geojson
//	cat features.geojson | wfst -action delete -config config.yaml
//
// The config file supplies per-deployment defaults (namespace, layer,
// spatial reference, namespace assignments); the transaction document is
// written to stdout, logs to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/beetlebugorg/wfst/internal/config"
	wfst "github.com/beetlebugorg/wfst/pkg/v1"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML defaults file")
	inputPath := flag.String("input", "-", "GeoJSON FeatureCollection file, - for stdin")
	action := flag.String("action", "insert", "transaction action: insert, update, delete or replace")
	autoHandle := flag.Bool("auto-handle", false, "generate a transaction handle")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	setupLogging(*logLevel, *logFormat)

	opts := wfst.DefaultTransactionOptions()
	if *configPath != "" {
		cfg, err := config.NewConfig(*configPath)
		if err != nil {
			log.Fatalln(err)
		}
		opts, err = cfg.TransactionOptions()
		if err != nil {
			log.Fatalln(err)
		}
	}
	if *autoHandle {
		opts.Handle = uuid.NewString()
	}

	data, err := readInput(*inputPath)
	if err != nil {
		log.Fatalln(err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.Fatalln("could not parse GeoJSON:", err)
	}

	features, err := wfst.FromGeoJSONCollection(fc)
	if err != nil {
		log.Fatalln(err)
	}

	document, err := buildTransaction(*action, features, opts)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(document)
}

func buildTransaction(action string, features []wfst.Feature, opts wfst.TransactionOptions) (string, error) {
	switch action {
	case "insert":
		return wfst.Transaction(wfst.ActionSet{Insert: features}, opts)
	case "update":
		return wfst.Transaction(wfst.ActionSet{Update: features}, opts)
	case "delete":
		return wfst.Transaction(wfst.ActionSet{Delete: features}, opts)
	case "replace":
		// Replace has no ActionSet slot; build the fragment and wrap it.
		fragment, err := wfst.Replace(features, opts)
		if err != nil {
			return "", err
		}
		return wfst.Transaction(fragment, opts)
	default:
		return "", fmt.Errorf("unknown action %q (expected insert, update, delete or replace)", action)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// setupLogging initialises the global slog default logger.
func setupLogging(level, format string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}
