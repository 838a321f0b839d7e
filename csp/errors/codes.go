package errors

// Reason codes carried by CallStackError. Callers dispatch on these
// instead of matching message text.
const (
	Internal   = "500"
	BadRequest = "400"
	NotFound   = "404"

	// Unsupported marks operations a key type can never perform,
	// such as hardware handle access on a software key.
	Unsupported = "405"

	// NotPrivateKey marks private-only operations invoked on a
	// public-only key.
	NotPrivateKey = "412"

	// InvalidKey marks a malformed or absent key handle at construction.
	InvalidKey = "422"

	CSRGeneration  = "460"
	CertGeneration = "461"
)

const (
	CSP = "CSP"

	IDN = "IDN"
)
