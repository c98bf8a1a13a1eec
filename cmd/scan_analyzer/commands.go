package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/scan_analyzer/internal/app"
	"github.com/kurochkinivan/scan_analyzer/internal/client"
	"github.com/kurochkinivan/scan_analyzer/internal/config"
	"github.com/kurochkinivan/scan_analyzer/internal/contextrecord"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "scan_analyzer",
		Usage:   "Two-stage medical scan analysis service and client",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			analyzeCommand(),
			statusCommand(),
			reportCommand(),
		},
	}
}

func logger(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}
	return log, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API, stage runner and reporter",
		Flags: serveFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Upload a scan, wait for the analysis and print the result",
		Flags: append(clientFlags(),
			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "Scan to analyze (`FILE`)",
				Required:  true,
				Validator: validateFile,
			},
			&cli.StringFlag{
				Name:      "context",
				Usage:     "Questionnaire JSON (`FILE`); the session's questionnaire is used when omitted",
				Validator: validateFile,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			return analyze(ctx, log, config.LoadClient(cmd), cmd.String("file"), cmd.String("context"))
		},
	}
}

func analyze(ctx context.Context, log *slog.Logger, cfg *config.Client, file, contextFile string) error {
	session, err := client.OpenSession(cfg.SessionFile)
	if err != nil {
		return err
	}

	record, err := loadContext(session, contextFile)
	if err != nil {
		return err
	}

	var contextJSON []byte
	if record != nil {
		if contextJSON, err = json.Marshal(record); err != nil {
			return fmt.Errorf("failed to encode context: %w", err)
		}
	}

	api := client.NewAPI(cfg.ServerURL, &http.Client{})

	submitted, err := api.Submit(ctx, file, contextJSON)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "submitted %s as job %s\n", submitted.OriginalName, submitted.JobID)

	if err := session.SetCurrentJob(client.CurrentJob{
		JobID:        submitted.JobID,
		ArtifactPath: submitted.Path,
		SubmittedAt:  time.Now(),
	}); err != nil {
		log.Warn("failed to remember current job", slog.String("err", err.Error()))
	}

	poller := client.NewPoller(
		log,
		api,
		api,
		session,
		client.Settings{
			PollInterval:      cfg.PollInterval,
			EstimatedDuration: cfg.EstimatedDuration,
			Timeout:           cfg.Timeout,
		},
		client.Target{
			JobID:        submitted.JobID,
			ArtifactPath: submitted.Path,
			Context:      record,
		},
	)

	printer := client.NewProgressPrinter(os.Stderr)
	poller.Observe(printer.Print)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		go proceedOnEnter(poller)
	}

	result, err := poller.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for analysis: %w", err)
	}

	client.RenderResult(os.Stdout, result)

	return nil
}

// loadContext validates the questionnaire in path and stores it in the
// session. Without a path the session's last questionnaire is reused.
func loadContext(session *client.Session, path string) (*domain.ContextRecord, error) {
	if path == "" {
		data, err := session.Load()
		if err != nil {
			return nil, err
		}
		return data.Context, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context: %w", err)
	}

	record, err := contextrecord.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := session.SetContext(record); err != nil {
		return nil, err
	}

	return record, nil
}

func proceedOnEnter(poller *client.Poller) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := poller.Proceed(); errors.Is(err, client.ErrProceedTooEarly) {
			fmt.Fprintln(os.Stderr, "\nanalysis is still expected to be running, keep waiting")
		}
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Print the status of a job",
		Flags: append(clientFlags(),
			&cli.StringFlag{
				Name:    "job",
				Aliases: []string{"j"},
				Usage:   "Job id; the session's current job when omitted",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.LoadClient(cmd)

			jobID, err := resolveJob(cfg, cmd.String("job"))
			if err != nil {
				return err
			}

			job, err := client.NewAPI(cfg.ServerURL, &http.Client{}).Get(ctx, jobID)
			if err != nil {
				return fmt.Errorf("failed to get job %s: %w", jobID, err)
			}

			client.RenderJob(os.Stdout, job)

			return nil
		},
	}
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Download the report of an analyzed job",
		Flags: append(clientFlags(),
			&cli.StringFlag{
				Name:    "job",
				Aliases: []string{"j"},
				Usage:   "Job id; the session's current job when omitted",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Report format: pdf, csv or xlsx",
				Value: "pdf",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the report to `FILE` instead of <job>.<format>",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) (err error) {
			cfg := config.LoadClient(cmd)

			jobID, err := resolveJob(cfg, cmd.String("job"))
			if err != nil {
				return err
			}

			format := cmd.String("format")

			out := cmd.String("out")
			if out == "" {
				out = jobID + "." + format
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer func() {
				err = errors.Join(err, f.Close())
				if err != nil {
					_ = os.Remove(out)
				}
			}()

			if err := client.NewAPI(cfg.ServerURL, &http.Client{}).DownloadReport(ctx, jobID, format, f); err != nil {
				return fmt.Errorf("failed to download report: %w", err)
			}

			fmt.Fprintf(os.Stderr, "report saved to %s\n", out)

			return nil
		},
	}
}

func resolveJob(cfg *config.Client, jobID string) (string, error) {
	if jobID != "" {
		return jobID, nil
	}

	session, err := client.OpenSession(cfg.SessionFile)
	if err != nil {
		return "", err
	}

	data, err := session.Load()
	if err != nil {
		return "", err
	}

	if data.CurrentJob == nil {
		return "", errors.New("no job given and the session has no current job")
	}

	return data.CurrentJob.JobID, nil
}
