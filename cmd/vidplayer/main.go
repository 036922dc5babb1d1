package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/ytget/vidplayer"
	"github.com/ytget/vidplayer/catalogue"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/internal/policy"
	"github.com/ytget/vidplayer/internal/script"
	"github.com/ytget/vidplayer/internal/shell"
)

type options struct {
	cataloguePath string
	policyPath    string
	scriptPath    string
	seed          uint64
	logConfig     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer, getenv func(string) string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vidplayer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.cataloguePath, "catalogue", getenv("VIDPLAYER_CATALOGUE"), "Catalogue file (.txt, .json, optionally .br compressed). Empty uses the built-in sample")
	fs.StringVar(&opts.policyPath, "policy", getenv("VIDPLAYER_POLICY"), "Moderation policy script defining flagReason(video)")
	fs.StringVar(&opts.scriptPath, "script", "", "Run a command script instead of the interactive prompt")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for random play (0 means unseeded)")
	fs.StringVar(&opts.logConfig, "log-config", "", "JSON logger configuration (default: VIDPLAYER_LOG_* environment)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vidplayer [flags]\n")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func setupLogging(path string, getenv func(string) string) error {
	cfg := logger.DefaultLogConfig()
	if path != "" {
		var err error
		if cfg, err = logger.LoadConfigFromFile(path); err != nil {
			return err
		}
	} else if getenv != nil {
		cfg = logger.ConfigFromEnv(getenv)
	}
	l, err := logger.CreateLoggerFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.SetGlobalLogger(l)
	return nil
}

func loadCatalogue(path string) (*catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Sample(), nil
	}
	return catalogue.LoadFile(path)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	opts, err := parseFlags(args, stderr, getenv)
	if err != nil {
		return err
	}
	if err := setupLogging(opts.logConfig, getenv); err != nil {
		return err
	}
	log := logger.WithComponent(logger.ComponentApp)

	c, err := loadCatalogue(opts.cataloguePath)
	if err != nil {
		return err
	}
	if opts.policyPath != "" {
		p, err := policy.Load(opts.policyPath)
		if err != nil {
			return err
		}
		if _, err := p.Apply(c.All()); err != nil {
			return fmt.Errorf("apply policy: %w", err)
		}
	}

	player := vidplayer.New().WithCatalogue(c)
	if opts.seed != 0 {
		player.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed)))
	}
	log.Info("player ready", logger.Fields{"videos": player.Count(), "seed": opts.seed})

	if opts.scriptPath != "" {
		sh := shell.New(player, nil, stdout)
		return script.New(sh).RunFile(ctx, opts.scriptPath)
	}
	return shell.New(player, stdin, stdout).Run()
}
