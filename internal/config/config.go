package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorePostgreSQL = "postgres"
	StoreSQLite     = "sqlite"
)

type Config struct {
	App
	Stages
	Store
	PostgreSQL
	SQLite
	HTTP
}

type App struct {
	UploadsDirectory string
	ReportsDirectory string
	WorkDirectory    string
}

type Stages struct {
	StageOneCommand []string
	StageTwoCommand []string
}

type Store struct {
	Driver string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type SQLite struct {
	Path string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Client struct {
	ServerURL         string
	PollInterval      time.Duration
	EstimatedDuration time.Duration
	Timeout           time.Duration
	SessionFile       string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			UploadsDirectory: cmd.String("uploads-dir"),
			ReportsDirectory: cmd.String("reports-dir"),
			WorkDirectory:    cmd.String("work-dir"),
		},
		Stages: Stages{
			StageOneCommand: strings.Fields(cmd.String("stage-one-cmd")),
			StageTwoCommand: strings.Fields(cmd.String("stage-two-cmd")),
		},
		Store: Store{
			Driver: cmd.String("store"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		SQLite: SQLite{
			Path: cmd.String("sqlite-path"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

func LoadClient(cmd *cli.Command) *Client {
	return &Client{
		ServerURL:         cmd.String("server"),
		PollInterval:      cmd.Duration("poll-interval"),
		EstimatedDuration: cmd.Duration("estimated-duration"),
		Timeout:           cmd.Duration("timeout"),
		SessionFile:       cmd.String("session-file"),
	}
}
