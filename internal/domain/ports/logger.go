package ports

// Logger is the structured logger used by domain services.
// Key-value pairs follow the charmbracelet/log convention.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}
