//go:build !linux

package system

import (
	"context"
	"errors"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console is a no-op outside Linux.
type Console struct {
	Logger logger
}

func (c *Console) EnterGraphics() error { return errors.New("console graphics mode requires linux") }
func (c *Console) Restore() error       { return nil }

// StopOnKeys is a no-op outside Linux.
func StopOnKeys(ctx context.Context, l logger, onStop func()) {}
