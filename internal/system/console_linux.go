//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var vtPaths = []string{"/dev/tty", "/dev/tty0"}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches the active virtual terminal into graphics mode while a
// framebuffer animation plays, so the text cursor does not blink through
// the frames.
type Console struct {
	Logger logger
	active bool
}

// EnterGraphics sets KD_GRAPHICS and hides the cursor. Failures are logged
// and returned; playback can still go ahead with a visible cursor.
func (c *Console) EnterGraphics() error {
	err := setKDMode(kdGraphics)
	c.log(err, "KD_GRAPHICS")
	if err == nil {
		c.active = true
	}
	if cerr := writeVT("\x1b[?25l"); cerr != nil && c.Logger != nil {
		c.Logger.Errorf("tty", "hide cursor failed: %v", cerr)
	}
	return err
}

// Restore returns the console to text mode and shows the cursor. It is a
// no-op unless EnterGraphics succeeded.
func (c *Console) Restore() error {
	if !c.active {
		return nil
	}
	c.active = false
	_ = writeVT("\x1b[?25h")
	err := setKDMode(kdText)
	c.log(err, "KD_TEXT")
	return err
}

func (c *Console) log(err error, mode string) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s failed: %v", mode, err)
		return
	}
	c.Logger.Infof("tty", "%s set", mode)
}

func setKDMode(mode int) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}
