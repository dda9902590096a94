package models

// LaunchContext carries what the launching deep link said about the
// registration flow. It is created once per launch and passed down
// explicitly instead of living in process-wide variables.
type LaunchContext struct {
	// FromLink is true when the client was started by opening a link.
	FromLink bool
	// ServerURL is the homeserver base URL taken from the link, if any.
	ServerURL string
	// InviteCode is the registration token taken from the link, if any.
	InviteCode string
}

// HasInvite reports whether the launch carried a registration token.
func (l LaunchContext) HasInvite() bool {
	return l.InviteCode != ""
}
