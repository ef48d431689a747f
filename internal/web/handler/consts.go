package handler

const (
	// RootPath is the root path for all API routes.
	RootPath = "/api/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// ErrInvalidID is returned when a path id parameter is not a positive integer.
	ErrInvalidID = "Invalid id"
	// ErrInvalidDate is returned when a path date parameter is not of DateLayout form.
	ErrInvalidDate = "Invalid date, expected format " + DateLayout
	// ErrInvalidBody is returned when a request body cannot be parsed.
	ErrInvalidBody = "Invalid request body"

	// DateLayout is the wire format of order dates in paths and bodies.
	DateLayout = "2006-01-02"
)
