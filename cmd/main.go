//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2020-present Detlef Stern
//-----------------------------------------------------------------------------

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"zettelstore.de/wikitree/builder"
	"zettelstore.de/wikitree/config"
	"zettelstore.de/wikitree/logger"
	"zettelstore.de/wikitree/metrics"
	"zettelstore.de/wikitree/parser"
	"zettelstore.de/wikitree/reference"
)

const defConfigfile = ".wikitree.yaml"

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 1 // wrong arguments or configuration
	exitFail  = 2 // a document could not be parsed or built
)

// errFailed signals that the problem was already reported.
var errFailed = errors.New("failed")

// CLI defines the global flags and the sub-commands.
type CLI struct {
	Config   string `short:"c" help:"Configuration file path (default: ${config})." type:"path"`
	Syntax   string `short:"s" help:"Markup syntax, overrides detection by file extension."`
	Format   string `short:"f" help:"Output format: native, tree, or text."`
	LogLevel string `name:"log-level" help:"Log level: trace, debug, info, warn, error."`
	NoWiki   bool   `name:"no-wiki" help:"Treat every reference as a URL."`
	Metrics  string `help:"Write Prometheus metrics to this file when done." type:"path"`

	Parse    ParseCmd    `cmd:"" help:"Parse files and print their document trees."`
	Watch    WatchCmd    `cmd:"" help:"Parse files again whenever they change."`
	Links    LinksCmd    `cmd:"" help:"Print the outline and the references of a document."`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve references and print their structure."`
	Syntaxes SyntaxesCmd `cmd:"" help:"List the supported markup syntaxes."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

// Env contains everything a command needs to run.
type Env struct {
	Config   *config.Config
	Log      *logger.Logger
	Metrics  *metrics.Collector
	Version  Version
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	explicit bool // syntax given on the command line
	registry *reference.Registry
	promReg  *prom.Registry
}

// Main is the real entrypoint of wikitree. It returns the exit code.
func Main(progName, buildVersion string) int {
	return Run(progName, buildVersion, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command line given by args.
func Run(progName, buildVersion string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	k, err := kong.New(&cli,
		kong.Name(progName),
		kong.Description("Build document trees from wiki markup."),
		kong.Writers(stdout, stderr),
		kong.Vars{"config": defConfigfile},
	)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}
	kctx, err := k.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}
	env, err := newEnv(&cli, progName, buildVersion, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}
	exitCode := exitOK
	if err = kctx.Run(env); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "%s: %v\n", kctx.Command(), err)
		}
		exitCode = exitFail
	}
	if cli.Metrics != "" {
		if err = metrics.WriteFile(cli.Metrics, env.promReg); err != nil {
			fmt.Fprintf(stderr, "%s: unable to write metrics: %v\n", progName, err)
			exitCode = exitFail
		}
	}
	return exitCode
}

func newEnv(cli *CLI, progName, buildVersion string, stdin io.Reader, stdout, stderr io.Writer) (*Env, error) {
	cfg, fromFile, err := loadConfig(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.Syntax != "" {
		cfg.Syntax = cli.Syntax
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	} else if !fromFile && isTerminal(stdout) {
		cfg.Format = config.FormatTree
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.NoWiki {
		cfg.WikiMode = false
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	promReg := prom.NewRegistry()
	log := logger.New(logger.NewLogWriterAdapterLayout(stderr, time.TimeOnly), "WIKI").SetLevel(cfg.Level())
	log.Debug().Str("syntax", cfg.Syntax).Str("format", cfg.Format).Bool("wiki", cfg.WikiMode).Msg("Configuration")
	return &Env{
		Config:   cfg,
		Log:      log,
		Metrics:  metrics.New(promReg),
		Version:  newVersion(progName, buildVersion),
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		explicit: cli.Syntax != "",
		registry: reg,
		promReg:  promReg,
	}, nil
}

// loadConfig reads the configuration file. Without an explicit path, the
// default file is used if it exists.
func loadConfig(path string) (*config.Config, bool, error) {
	if path == "" {
		if _, err := os.Stat(defConfigfile); err != nil {
			return config.Default(), false, nil
		}
		path = defConfigfile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Resolvers returns a link and an image resolver.
func (env *Env) Resolvers() (links, images *reference.Resolver) {
	wm := env.Config.WikiModeCapability()
	opts := []reference.Option{
		reference.WithLogger(env.Log),
		reference.WithObserver(env.Metrics),
	}
	return reference.NewLinkResolver(env.registry, wm, opts...),
		reference.NewImageResolver(env.registry, wm, opts...)
}

// NewBuilder returns a tree builder for documents of the given syntax.
func (env *Env) NewBuilder(syntax string) *builder.Builder {
	links, images := env.Resolvers()
	return builder.New(links, images,
		builder.WithInlineParser(parser.InlineParser(syntax)),
		builder.WithLogger(env.Log.With("syntax", syntax)),
		builder.WithObserver(env.Metrics),
		builder.WithIDGenerator(env.Config.IDGenerator()),
	)
}
