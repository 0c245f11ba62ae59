package logger

// NoOpLogger discards everything. Tests use it where log output is noise.
type NoOpLogger struct{}

// NewNop returns a Logger that does nothing.
func NewNop() Logger { return &NoOpLogger{} }

func (*NoOpLogger) Debug(string, ...Field) {}
func (*NoOpLogger) Info(string, ...Field)  {}
func (*NoOpLogger) Warn(string, ...Field)  {}
func (*NoOpLogger) Error(string, ...Field) {}

func (l *NoOpLogger) With(...Field) Logger { return l }

func (*NoOpLogger) Sync() error { return nil }
