package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/cli/data"
	"github.com/daykeep/daykeep/internal/cli/reflections"
	"github.com/daykeep/daykeep/internal/cli/settings"
	"github.com/daykeep/daykeep/internal/cli/system"
	"github.com/daykeep/daykeep/internal/cli/tasks"
	"github.com/daykeep/daykeep/internal/config"
	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/keyring"
	"github.com/daykeep/daykeep/internal/kv"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/notifier"
	"github.com/daykeep/daykeep/internal/registry"
	"github.com/daykeep/daykeep/internal/remote"
	"github.com/daykeep/daykeep/internal/scheduler"
	"github.com/daykeep/daykeep/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable verbose logging."`

	Init  system.InitCmd  `cmd:"" help:"Show storage location and status."`
	Watch system.WatchCmd `cmd:"" help:"Run the reminder/alarm daemon."`
	Task  struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
		Skip   tasks.TaskSkipCmd   `cmd:"" help:"Skip a task with a reason."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks." default:"1"`
	} `cmd:"" help:"Manage tasks."`
	Reflect struct {
		Add  reflections.ReflectAddCmd  `cmd:"" help:"Record today's reflection." default:"1"`
		List reflections.ReflectListCmd `cmd:"" help:"List past reflections."`
	} `cmd:"" help:"Daily reflections."`
	Stats    cli.StatsCmd         `cmd:"" help:"Show productivity statistics."`
	Settings settings.SettingsCmd `cmd:"" help:"View or change settings."`
	Export   data.ExportCmd       `cmd:"" help:"Export your data (JSON or CSV)."`
	Import   data.ImportCmd       `cmd:"" help:"Import a previously exported document."`
	Remote   struct {
		Set   system.RemoteSetCmd   `cmd:"" help:"Store the remote mirror connection string."`
		Clear system.RemoteClearCmd `cmd:"" help:"Remove the stored connection string."`
		Pull  system.RemotePullCmd  `cmd:"" help:"Seed this device with tasks from the mirror."`
	} `cmd:"" help:"Manage the optional remote mirror."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first productivity tracker: time-boxed tasks, streaks, reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if configPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			errors.Fatal(err)
		}
		configPath = filepath.Join(dir, config.DefaultConfigFileName)
	}

	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		errors.Fatal(err)
	}

	medium, err := kv.OpenSQLite(cfg.DataPath, cfg.QuotaBytes)
	if err != nil {
		errors.Fatal(err)
	}
	defer medium.Close()

	st := store.New(medium)
	if err := st.Load(); err != nil {
		errors.Fatal(err)
	}

	sched := scheduler.New(medium, notifier.New(), func() bool {
		return st.Document().Settings.NotificationsEnabled
	})

	var mirror registry.Mirror
	if cfg.RemoteEnabled {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			logger.Warn("Remote mirror enabled but no connection string available", "error", err)
		} else if pg, err := remote.Open(connStr); err != nil {
			// The mirror must never block local operation.
			logger.Warn("Remote mirror unavailable", "error", err)
		} else {
			defer pg.Close()
			mirror = pg
		}
	}

	appCtx := &cli.Context{
		Config:    cfg,
		Store:     st,
		Registry:  registry.New(st, sched, mirror),
		Scheduler: sched,
	}

	errors.Fatal(ctx.Run(appCtx))
}
