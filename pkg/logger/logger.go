package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var base *zap.Logger

var serviceName = "paper-trader"

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

// Init builds the production logger. Must be called before any other
// function in this package.
func Init() error {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	base = l
	return nil
}

func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

func Info(format string, args ...interface{}) {
	if base == nil {
		panic("logger is not initialized")
	}

	msg := fmt.Sprintf(format, args...)
	base.With(
		zap.String("service", serviceName),
	).Info(msg)
}

func Error(format string, args ...interface{}) {
	if base == nil {
		panic("logger is not initialized")
	}

	msg := fmt.Sprintf(format, args...)
	base.With(
		zap.String("service", serviceName),
	).Error(msg)
}

func Fatal(format string, args ...interface{}) {
	if base == nil {
		panic("logger is not initialized")
	}

	msg := fmt.Sprintf(format, args...)
	base.With(
		zap.String("service", serviceName),
	).Fatal(msg)
}
