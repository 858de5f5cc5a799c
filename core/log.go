package core

// Logger is the app-wide logging contract.
// Implementations may inspect args for known types (eg. the acting account)
// and attach them to the reported event.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
