package ui

import "github.com/charmbracelet/log"

// Reporter delivers conversion messages to the user. Both front ends (plain
// console and interactive prompt) implement it, so the pipeline never knows
// which one is driving. Fatalf reports and terminates the process.
type Reporter interface {
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Console reports through the structured logger.
type Console struct {
	logger *log.Logger
}

func NewConsole(logger *log.Logger) *Console {
	return &Console{logger: logger}
}

func (c *Console) Warningf(format string, args ...any) {
	c.logger.Warnf(format, args...)
}

func (c *Console) Errorf(format string, args ...any) {
	c.logger.Errorf(format, args...)
}

func (c *Console) Fatalf(format string, args ...any) {
	c.logger.Fatalf(format, args...)
}
