package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// MsgSuccess is the default message for successful responses.
	MsgSuccess = "Success"
	// MsgInternalError is the client-facing message for unmapped errors.
	MsgInternalError = "Something went wrong"
	// MsgUnauthorized is the message for failed authentication.
	MsgUnauthorized = "Unauthorized"
)
