package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/models"
)

const usage = `usage: credcache [global flags] <command> [flags] [args]

commands:
  save    -server URL -account ID [-file F]   encrypt and cache the server and account
  load    [-file F] [-copy]                   decrypt the cached server and account
  invite  verify -server HOST -code CODE      check an invite code with the homeserver
  invite  record -homeserver URL -code CODE -token TOKEN
                                              mark an invite code as used
  link    [-verify] URL                       read the server and invite code from a link
  scan    TEXT                                read the invite code from scanned QR text
  pref    get KEY | set [-kind K] KEY VALUE | unset KEY
  version                                     print build information

The passphrase is read from CREDCACHE_PASSPHRASE or asked for interactively.
`

// App is the credcache command runner.
type App struct {
	services  *service.ClientServices
	prompter  Prompter
	clipboard Clipboard

	appCfg     config.App
	passphrase string
	buildInfo  models.AppBuildInfo

	stdout io.Writer
	stderr io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, prompter Prompter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	if prompter == nil {
		return nil, errors.New("prompter is nil")
	}
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	return &App{
		services:   services,
		prompter:   prompter,
		clipboard:  systemClipboard{},
		appCfg:     cfg.App,
		passphrase: cfg.Passphrase,
		buildInfo:  buildInfo,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		logger:     logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ErrNoCommand
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("command", args[0]).Msg("running command")

	var err error
	switch args[0] {
	case "save":
		err = a.save(ctx, args[1:])
	case "load":
		err = a.load(ctx, args[1:])
	case "invite":
		err = a.invite(ctx, args[1:])
	case "link":
		err = a.link(ctx, args[1:])
	case "scan":
		err = a.scan(args[1:])
	case "pref":
		err = a.pref(ctx, args[1:])
	case "version":
		a.version()
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.stdout, usage)
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		log.Err(err).Str("command", args[0]).Msg("command failed")
	}
	return err
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags reports bad flags as [ErrUsage]. flag.ErrHelp is returned as is.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// ExitCode maps the result of [App.Run] to a process exit status:
// 0 on success, 2 for usage errors, 1 for any other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoCommand),
		errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
