package i

// Logger is the leveled logger handed to every service.
type Logger interface {
	// Debug logs messages useful only while developing.
	Debug(msg string)

	// Info logs normal operational messages.
	Info(msg string)

	// Warn logs recoverable oddities.
	Warn(msg string)

	// Error logs failures.
	Error(msg string)
}
