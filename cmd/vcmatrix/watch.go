package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the project whenever the config file changes",
		Long: `Watch the config file and print a summary of the generated project after
each change. Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return opts.watch(ctx, cmd)
		},
	}
}

func (opts *options) watch(ctx context.Context, cmd *cobra.Command) error {
	path, err := filepath.Abs(opts.configPath)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	// Editors replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := cmd.OutOrStdout()
	opts.regenerate(w, cmd)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0 {
				opts.regenerate(w, cmd)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %s\n", err)
		}
	}
}

func (opts *options) regenerate(w io.Writer, cmd *cobra.Command) {
	stamp := time.Now().Format(time.TimeOnly)
	_, prj, err := opts.load(cmd)
	if err != nil {
		fmt.Fprintf(w, "%s %s %s\n", stamp, color.RedString("✗"), err)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", stamp, color.GreenString("✓"), summary(prj))
}

func summary(prj *vckore.Project) string {
	var compat, adapters int
	if t := prj.FindTask(vercompat.CompatibilityTestTaskName); t != nil {
		compat = len(t.Dependencies())
	}
	if t := prj.FindTask(vercompat.CompatibilityAdapterTestsTaskName); t != nil {
		adapters = len(t.Dependencies())
	}
	return fmt.Sprintf("%d units, %d scopes, %d tasks: %d compatibility tests, %d adapter tests",
		len(prj.Units()),
		len(prj.Scopes()),
		len(prj.Tasks()),
		compat,
		adapters,
	)
}
