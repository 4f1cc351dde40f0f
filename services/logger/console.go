package logsvc

import (
	"github.com/labstack/gommon/log"

	"github.com/scut1er/studentportal/core"
)

// ConsoleLogger writes leveled logs to stderr.
type ConsoleLogger struct {
	log *log.Logger
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger() *ConsoleLogger {
	logger := log.New(core.Conf.GetString("appName"))
	if core.Conf.GetBool("debug") {
		logger.SetLevel(log.DEBUG)
	} else {
		logger.SetLevel(log.INFO)
	}
	return &ConsoleLogger{log: logger}
}

func (l ConsoleLogger) join(msg string, args []interface{}) []interface{} {
	all := make([]interface{}, 0, len(args)+1)
	all = append(all, msg)
	return append(all, args...)
}

func (l ConsoleLogger) Debug(msg string, args ...interface{}) { l.log.Debug(l.join(msg, args)...) }
func (l ConsoleLogger) Info(msg string, args ...interface{})  { l.log.Info(l.join(msg, args)...) }
func (l ConsoleLogger) Warn(msg string, args ...interface{})  { l.log.Warn(l.join(msg, args)...) }
func (l ConsoleLogger) Error(msg string, args ...interface{}) { l.log.Error(l.join(msg, args)...) }
func (l ConsoleLogger) Fatal(msg string, args ...interface{}) { l.log.Fatal(l.join(msg, args)...) }
