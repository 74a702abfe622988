package i

// Logger is the general purpose application logger.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
