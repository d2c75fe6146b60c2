package system

import (
	"context"
	"fmt"
	"time"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/keyring"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/remote"
	"github.com/daykeep/daykeep/internal/stats"
)

type RemoteSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string for the remote mirror."`
}

func (c *RemoteSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Remote connection string stored in the OS keyring.")
	fmt.Println("Enable mirroring with remote_enabled = true in the config file.")
	return nil
}

type RemoteClearCmd struct{}

func (c *RemoteClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No remote connection string was stored.")
			return nil
		}
		return err
	}
	fmt.Println("Remote connection string removed from the OS keyring.")
	return nil
}

// RemotePullCmd seeds this device from the mirror: mirrored tasks whose
// ids are unknown locally are added. Local records always win; pull
// never overwrites them.
type RemotePullCmd struct{}

func (c *RemotePullCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return err
	}
	pg, err := remote.Open(connStr)
	if err != nil {
		return err
	}
	defer pg.Close()

	pullCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	tasks, err := pg.LoadTasks(pullCtx)
	if err != nil {
		return err
	}

	doc := ctx.Store.Document()
	added := 0
	for _, task := range tasks {
		if doc.TaskByID(task.ID) >= 0 {
			continue
		}
		if err := task.Validate(); err != nil {
			logger.Warn("Skipping invalid mirrored task", "id", task.ID, "error", err)
			continue
		}
		doc.Tasks = append(doc.Tasks, task)
		added++
	}
	if added == 0 {
		fmt.Println("Already up to date with the remote mirror.")
		return nil
	}

	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	if err := ctx.Store.Save(); err != nil {
		return err
	}
	fmt.Printf("Pulled %d task(s) from the remote mirror.\n", added)
	return nil
}
