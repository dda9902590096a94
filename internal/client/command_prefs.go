package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credcache/internal/tui"
	"github.com/MKhiriev/credcache/models"
)

func (a *App) pref(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: pref get|set|unset", ErrMissingArgument)
	}

	prefs := a.services.PreferencesService
	switch args[0] {
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("%w: pref get KEY", ErrMissingArgument)
		}
		value, err := prefs.Get(ctx, args[1])
		if err != nil {
			return err
		}
		text, err := value.Encode()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s (%s)\n", text, value.Kind)
		return nil

	case "set":
		fs := a.newFlagSet("pref set")
		kindName := fs.String("kind", "string", "value type: string, int, bool or float")
		if err := parseFlags(fs, args[1:]); err != nil {
			return err
		}
		if fs.NArg() < 2 {
			return fmt.Errorf("%w: pref set KEY VALUE", ErrMissingArgument)
		}
		kind, err := models.ParsePreferenceKind(*kindName)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return prefs.Set(ctx, fs.Arg(0), kind, fs.Arg(1))

	case "unset":
		if len(args) < 2 {
			return fmt.Errorf("%w: pref unset KEY", ErrMissingArgument)
		}
		return prefs.Remove(ctx, args[1])

	default:
		return fmt.Errorf("%w: pref %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) version() {
	fmt.Fprintln(a.stdout, tui.RenderBuildInfo(a.buildInfo))
}
