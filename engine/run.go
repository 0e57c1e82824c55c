// Package engine implements the program's subcommands, wiring markup
// parsing, style resolution and request building into one pipeline.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uiml/markup"
	"uiml/reload"
	"uiml/render"
	"uiml/state"
)

// Render parses the markup source once and writes the lowered request tree
// to the destination.
func Render(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if err := pickPaths(env, cmd); err != nil {
		return err
	}

	// keep the source in the debug report whatever happens to it below
	if er := env.Rpt.StoreCopy("markup/"+filepath.Base(env.MarkupPath), env.MarkupPath); er != nil {
		env.Log.Warn("Unable to store markup source in report", zap.Error(er))
	}

	root, err := markup.ParseFile(env.MarkupPath, env.Log)
	if err != nil {
		return fmt.Errorf("unable to parse markup: %w", err)
	}

	req := newBuilder(env).Build(root)
	if env.Rpt != nil {
		if data, er := DumpRequests(req); er == nil {
			env.Rpt.StoreData("render/requests.xml", []byte(data))
		}
	}
	return writeRequests(env, req)
}

// Watch keeps the request tree current while the markup source is edited,
// rewriting the destination after every good reparse. It returns when ctx
// is cancelled.
func Watch(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if err := pickPaths(env, cmd); err != nil {
		return err
	}

	if !env.Cfg.Document.Watch.Enable {
		env.Log.Info("Watching disabled by configuration, rendering once")
		return Render(ctx, cmd)
	}

	settle := time.Duration(env.Cfg.Document.Watch.SettleMs) * time.Millisecond
	c := reload.NewCoordinator(env.MarkupPath, settle, env.Log)

	builder := newBuilder(env)
	if _, err := c.Load(); err != nil {
		// stay up so the source can be fixed under the watcher
		env.Log.Warn("Initial load failed, waiting for changes", zap.Error(err))
	} else if err := writeRequests(env, builder.Build(c.Current().Root)); err != nil {
		return err
	}

	sub := c.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-sub:
				snap := c.Current()
				if err := writeRequests(env, builder.Build(snap.Root)); err != nil {
					env.Log.Error("Unable to write request tree", zap.Error(err))
				}
			}
		}
	}()

	return c.Run(ctx)
}

func pickPaths(env *state.LocalEnv, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("no markup source specified")
	}
	if cmd.NArg() > 2 {
		env.Log.Warn("Malformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	env.MarkupPath = cmd.Args().Get(0)
	env.OutputPath = cmd.Args().Get(1)

	if _, err := os.Stat(env.MarkupPath); err != nil {
		return fmt.Errorf("unable to access markup source: %w", err)
	}
	return nil
}

func newBuilder(env *state.LocalEnv) *render.Builder {
	var loader *render.Loader
	if assets := env.Cfg.Document.Assets; assets.Load {
		loader = render.NewLoader(assets.ScaleFactor, assets.MaxRasterDim, assets.VectorSize, env.Log)
	}
	return render.NewBuilder(filepath.Dir(env.MarkupPath), loader, env.Log)
}

func writeRequests(env *state.LocalEnv, req *render.Request) error {
	data, err := DumpRequests(req)
	if err != nil {
		return fmt.Errorf("unable to serialize request tree: %w", err)
	}

	if len(env.OutputPath) == 0 {
		_, err = os.Stdout.WriteString(data)
		return err
	}
	if err := os.WriteFile(env.OutputPath, []byte(data), 0644); err != nil {
		return fmt.Errorf("unable to write request tree: %w", err)
	}
	env.Log.Info("Request tree written",
		zap.String("destination", env.OutputPath), zap.Int("requests", req.Count()))
	return nil
}
