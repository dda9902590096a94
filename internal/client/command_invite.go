package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/models"
)

func (a *App) invite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: invite verify|record", ErrMissingArgument)
	}

	switch args[0] {
	case "verify":
		return a.inviteVerify(ctx, args[1:])
	case "record":
		return a.inviteRecord(ctx, args[1:])
	default:
		return fmt.Errorf("%w: invite %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) inviteVerify(ctx context.Context, args []string) error {
	fs := a.newFlagSet("invite verify")
	server := fs.String("server", "", "homeserver host or URL (default: last used)")
	code := fs.String("code", "", "invite code")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	return a.verifyCode(ctx, *server, *code)
}

func (a *App) verifyCode(ctx context.Context, server, code string) error {
	if server == "" {
		server = a.prefString(ctx, service.PrefServerURL)
	}
	if server == "" {
		return fmt.Errorf("%w: -server", ErrMissingArgument)
	}

	token, err := a.services.InviteService.VerifyInviteCode(ctx, server, code)
	if err != nil {
		return fmt.Errorf("verify invite code: %w", err)
	}

	fmt.Fprintln(a.stdout, "invite code is valid")
	if left, ok := usesLeft(token); ok {
		fmt.Fprintf(a.stdout, "uses left: %d\n", left)
	}
	return nil
}

func (a *App) inviteRecord(ctx context.Context, args []string) error {
	fs := a.newFlagSet("invite record")
	homeserver := fs.String("homeserver", "", "homeserver base URL (default: last used)")
	code := fs.String("code", "", "invite code")
	token := fs.String("token", "", "access token of the new account")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	base := *homeserver
	if base == "" {
		base = a.prefString(ctx, service.PrefServerURL)
	}
	if base == "" {
		return fmt.Errorf("%w: -homeserver", ErrMissingArgument)
	}

	if err := a.services.InviteService.RecordInviteUsage(ctx, base, *code, *token); err != nil {
		return fmt.Errorf("record invite usage: %w", err)
	}

	fmt.Fprintln(a.stdout, "invite usage recorded")
	return nil
}

// link prints what a launch link carries and remembers its server.
func (a *App) link(ctx context.Context, args []string) error {
	fs := a.newFlagSet("link")
	verify := fs.Bool("verify", false, "verify the invite code with the homeserver")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: link URL", ErrMissingArgument)
	}

	launch, err := a.services.LaunchService.ParseLaunchLink(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "server:      %s\ninvite code: %s\n", orDash(launch.ServerURL), orDash(launch.InviteCode))

	if launch.ServerURL != "" {
		if err = a.services.PreferencesService.PutString(ctx, service.PrefServerURL, launch.ServerURL); err != nil {
			return err
		}
	}

	if *verify && launch.HasInvite() {
		return a.verifyCode(ctx, launch.ServerURL, launch.InviteCode)
	}
	return nil
}

func (a *App) scan(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: scan TEXT", ErrMissingArgument)
	}

	code, err := a.services.LaunchService.ExtractInviteCode(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, code)
	return nil
}

func usesLeft(token models.RegistrationToken) (int, bool) {
	if token.UsesAllowed == nil {
		return 0, false
	}
	return *token.UsesAllowed - token.Pending - token.Completed, true
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
