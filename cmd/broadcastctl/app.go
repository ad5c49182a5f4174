package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/agent"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/directory"
	"github.com/jsamuelsen11/ward-alert-service/internal/app"
	"github.com/jsamuelsen11/ward-alert-service/internal/app/fanout"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/broadcast"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
)

const defaultWorkers = 4

// env is built once per invocation by the app's Before hook.
type env struct {
	dir     *directory.Static
	encoder *broadcast.Encoder
	service *app.BroadcastService
	db      *sql.DB
}

// newApp builds the CLI. A nil commander runs the real agent.
func newApp(stdout, stderr io.Writer, commander agent.Commander) *cli.App {
	var e *env

	return &cli.App{
		Name:      "broadcastctl",
		Usage:     "inspect and send ward mesh broadcasts",
		UsageText: "broadcastctl [global options] command [command options] [patientId...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "configuration profile",
				EnvVars: []string{"APP_PROFILE"},
				Value:   "local",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory holding base.yaml and the profile files",
				Value: "configs",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			e, err = newEnv(c.Context, c.String("profile"), c.String("config-dir"), stderr, commander)
			return err
		},
		After: func(*cli.Context) error {
			if e != nil && e.db != nil {
				return e.db.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "print the agent command line for a patient without sending it",
				ArgsUsage: "<patientId>",
				Flags:     []cli.Flag{kindFlag()},
				Action: func(c *cli.Context) error {
					kind, err := parseKind(c.String("kind"))
					if err != nil {
						return err
					}
					p, err := e.dir.Patient(c.Args().First())
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, e.encoder.Encode(e.encoder.Intent(kind, p)))
					return err
				},
			},
			{
				Name:      "lookup",
				Usage:     "print a patient's directory record",
				ArgsUsage: "<patientId>",
				Action: func(c *cli.Context) error {
					p, err := e.dir.Patient(c.Args().First())
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tNAME\tSECTOR")
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Sector)
					return tw.Flush()
				},
			},
			{
				Name:      "send",
				Usage:     "broadcast to one or more patients through the mesh agent",
				ArgsUsage: "<patientId>... | --all",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.BoolFlag{Name: "all", Usage: "send to every patient in the directory"},
					&cli.IntFlag{Name: "workers", Usage: "concurrent agent processes", Value: defaultWorkers},
				},
				Action: func(c *cli.Context) error {
					kind, err := parseKind(c.String("kind"))
					if err != nil {
						return err
					}
					ids := c.Args().Slice()
					if c.Bool("all") {
						ids = nil
						for _, p := range e.dir.Patients() {
							ids = append(ids, p.ID)
						}
					}
					if len(ids) == 0 {
						return errors.New("send: no patient IDs given")
					}
					return e.send(c.Context, c.App.Writer, kind, ids, c.Int("workers"))
				},
			},
		},
	}
}

func newEnv(ctx context.Context, profile, configDir string, logOut io.Writer, commander agent.Commander) (*env, error) {
	cfg, err := config.Load(profile, config.WithConfigDir(configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, "text", logOut)

	dir, db, err := directory.Load(ctx, cfg.Directory, logger)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}

	enc, err := broadcast.NewEncoder(cfg.Agent.Prefix, cfg.Agent.Gateway, cfg.Agent.Group)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	var opts []agent.Option
	if commander != nil {
		opts = append(opts, agent.WithCommander(commander))
	}
	disp := agent.New(cfg.Agent, nil, logger, opts...)

	return &env{
		dir:     dir,
		encoder: enc,
		service: app.NewBroadcastService(dir, enc, disp, logger, app.WithWorkDir(cfg.Agent.WorkDir)),
		db:      db,
	}, nil
}

// send broadcasts to ids with at most workers agents running at once and
// prints one line per patient. Any failure makes the command fail.
func (e *env) send(ctx context.Context, w io.Writer, kind broadcast.Kind, ids []string, workers int) error {
	fn := e.service.Setup
	if kind == broadcast.KindCritical {
		fn = e.service.Critical
	}

	results := fanout.Run(ctx, workers, ids, func(ctx context.Context, id string) (struct{}, error) {
		return struct{}{}, fn(ctx, id)
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "failed: " + r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ids[i], kind, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if errs := fanout.Errors(results); len(errs) > 0 {
		return fmt.Errorf("%d of %d broadcasts failed", len(errs), len(ids))
	}
	return nil
}

func kindFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Usage:    "broadcast kind: setup or critical",
		Required: true,
	}
}

func parseKind(s string) (broadcast.Kind, error) {
	k := broadcast.Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown kind %q (want setup or critical)", s)
	}
	return k, nil
}
