package core

// Logger is the application wide logger.
// expected args: error, map[string]interface{}, or a value implementing Person
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Person identifies the visitor a log entry is about.
type Person struct {
	ID    string
	Name  string
	Email string
}
