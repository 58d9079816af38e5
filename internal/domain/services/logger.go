package services

import "github.com/ersonp/mythdex/internal/domain/ports"

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func orNop(logger ports.Logger) ports.Logger {
	if logger == nil {
		return nopLogger{}
	}
	return logger
}
