package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldServerURL targets the homeserver URL of a record or launch context.
	FieldServerURL = "server_url"

	// FieldAccount targets the account identifier of a credential record.
	FieldAccount = "account"

	// FieldInviteCode targets the registration token of a launch context.
	FieldInviteCode = "invite_code"
)
