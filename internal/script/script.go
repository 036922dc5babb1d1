// Package script runs JavaScript command scripts against a player session.
//
// Scripts see a global `player` object whose methods mirror the
// interactive commands and return the text they printed:
//
//	player.play("cat1");
//	var out = player.searchTag("#cat", 1);
//	print(out);
//
// search methods take the selection answer as an optional second
// argument; when it is missing nothing is selected.
package script

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/internal/shell"
)

// Runner executes scripts through a shell so output matches the REPL.
type Runner struct {
	shell *shell.Shell
	log   *logger.ComponentLogger
}

// New creates a Runner bound to sh.
func New(sh *shell.Shell) *Runner {
	return &Runner{shell: sh, log: logger.WithComponent(logger.ComponentScript)}
}

// RunFile reads and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return r.Run(ctx, path, string(src))
}

// Run executes src. Cancelling ctx interrupts the script.
func (r *Runner) Run(ctx context.Context, name, src string) error {
	vm := goja.New()
	if err := r.bind(vm); err != nil {
		return fmt.Errorf("bind player: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	r.log.Debug("script started", logger.Fields{"script": name})
	if _, err := vm.RunScript(name, src); err != nil {
		r.log.Error("script failed", logger.Fields{"script": name, "error": err.Error()})
		return fmt.Errorf("run script: %w", err)
	}
	r.log.Debug("script finished", logger.Fields{"script": name})
	return nil
}

func (r *Runner) bind(vm *goja.Runtime) error {
	sh := r.shell
	printLine := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, a := range call.Arguments {
			parts[i] = a.String()
		}
		return vm.ToValue(sh.Print(strings.Join(parts, " ")))
	}
	search := func(run func(query string, choose shell.Chooser) string) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			var choose shell.Chooser
			if c := call.Argument(1); !goja.IsUndefined(c) && !goja.IsNull(c) {
				choose = shell.Answer(c.String())
			}
			return vm.ToValue(run(call.Argument(0).String(), choose))
		}
	}

	player := map[string]any{
		"count":              sh.Count,
		"showAll":            sh.ShowAll,
		"play":               sh.Play,
		"playRandom":         sh.PlayRandom,
		"stop":               sh.Stop,
		"pause":              sh.Pause,
		"resume":             sh.Resume,
		"showPlaying":        sh.ShowPlaying,
		"createPlaylist":     sh.CreatePlaylist,
		"addToPlaylist":      sh.AddToPlaylist,
		"removeFromPlaylist": sh.RemoveFromPlaylist,
		"clearPlaylist":      sh.ClearPlaylist,
		"deletePlaylist":     sh.DeletePlaylist,
		"showPlaylist":       sh.ShowPlaylist,
		"showAllPlaylists":   sh.ShowAllPlaylists,
		"searchTitle":        search(sh.SearchTitle),
		"searchTag":          search(sh.SearchTag),
		"flag":               sh.Flag,
		"allow":              sh.Allow,
	}
	if err := vm.Set("player", player); err != nil {
		return err
	}
	if err := vm.Set("print", printLine); err != nil {
		return err
	}
	return vm.Set("console", map[string]any{"log": printLine})
}
