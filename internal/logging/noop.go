package logging

// NoopLogger discards everything. Used in tests.
var NoopLogger Logger = noopLogger{}

type noopLogger struct{}

func (n noopLogger) Debug(args ...interface{})                   {}
func (n noopLogger) Debugf(format string, args ...interface{})   {}
func (n noopLogger) Error(args ...interface{})                   {}
func (n noopLogger) Errorf(format string, args ...interface{})   {}
func (n noopLogger) Fatal(args ...interface{})                   {}
func (n noopLogger) Fatalf(format string, args ...interface{})   {}
func (n noopLogger) Info(args ...interface{})                    {}
func (n noopLogger) Infof(format string, args ...interface{})    {}
func (n noopLogger) Warning(args ...interface{})                 {}
func (n noopLogger) Warningf(format string, args ...interface{}) {}
