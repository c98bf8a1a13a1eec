package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/scan_analyzer/internal/client"
	"github.com/kurochkinivan/scan_analyzer/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func configFlag(config *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Validator:   validateConfig,
		Usage:       "Load configuration from `FILE`",
		Destination: config,
	}
}

func serveFlags() []cli.Flag {
	var cfg string

	return []cli.Flag{
		configFlag(&cfg),
		&cli.StringFlag{
			Name:    "uploads-dir",
			Aliases: []string{"u"},
			Usage:   "Set directory to store uploaded scans in",
			Value:   "uploads",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.uploads_dir", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write reports to",
			Value:   "reports",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:      "work-dir",
			Aliases:   []string{"w"},
			Usage:     "Set working directory of the analysis stages",
			Value:     ".",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.work_dir", altsrc.NewStringPtrSourcer(&cfg))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "stage-one-cmd",
			Usage:   "Set command extracting findings from a scan; the scan path is appended",
			Value:   "python3 main.py",
			Sources: cli.NewValueSourceChain(yaml.YAML("stages.stage_one", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "stage-two-cmd",
			Usage:   "Set command turning findings and questionnaire into a final analysis",
			Value:   "python3 gptapi.py",
			Sources: cli.NewValueSourceChain(yaml.YAML("stages.stage_two", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:      "store",
			Usage:     "Set job status store: postgres or sqlite",
			Value:     config.StoreSQLite,
			Sources:   cli.NewValueSourceChain(yaml.YAML("store.driver", altsrc.NewStringPtrSourcer(&cfg))),
			Validator: validateStore,
		},
		&cli.StringFlag{
			Name:    "sqlite-path",
			Usage:   "Set SQLite database file",
			Value:   filepath.Join("data", "scan_analyzer.db"),
			Sources: cli.NewValueSourceChain(yaml.YAML("sqlite.path", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:  "pg-username",
			Usage: "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PG_USERNAME"),
				yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&cfg)),
			),
		},
		&cli.StringFlag{
			Name:  "pg-password",
			Usage: "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PG_PASSWORD"),
				yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&cfg)),
			),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "scan_analyzer",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout; /analyze answers only after stage two finished",
			Value:   10 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&cfg))),
		},
	}
}

func clientFlags() []cli.Flag {
	var cfg string

	return []cli.Flag{
		configFlag(&cfg),
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Set scan_analyzer server URL",
			Value:   "http://localhost:8080",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SCAN_ANALYZER_SERVER"),
				yaml.YAML("client.server", altsrc.NewStringPtrSourcer(&cfg)),
			),
		},
		&cli.DurationFlag{
			Name:    "poll-interval",
			Usage:   "Set job status poll interval",
			Value:   client.DefaultPollInterval,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.poll_interval", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.DurationFlag{
			Name:    "estimated-duration",
			Usage:   "Set expected duration of image analysis, drives the progress estimate",
			Value:   client.DefaultEstimatedDuration,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.estimated_duration", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Set how long to wait for image analysis before aggregating anyway",
			Value:   client.DefaultTimeout,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.timeout", altsrc.NewStringPtrSourcer(&cfg))),
		},
		&cli.StringFlag{
			Name:    "session-file",
			Usage:   "Set file keeping the questionnaire, current job and cached results",
			Value:   defaultSessionFile(),
			Sources: cli.NewValueSourceChain(yaml.YAML("client.session_file", altsrc.NewStringPtrSourcer(&cfg))),
		},
	}
}

func defaultSessionFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "scan_analyzer", "session.json")
}

func validateStore(store string) error {
	switch store {
	case config.StorePostgreSQL, config.StoreSQLite:
		return nil
	default:
		return fmt.Errorf("store must be %q or %q, got %q", config.StorePostgreSQL, config.StoreSQLite, store)
	}
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	if err := validateFile(config); err != nil {
		return err
	}

	ext := filepath.Ext(config)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
