//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
	keyQ   = 16
	keyF4  = 62
)

var stopKeys = map[uint16]bool{keyEsc: true, keyQ: true, keyF4: true}

// StopOnKeys watches the evdev devices under /dev/input/event* and calls
// onStop once when Esc, Q or F4 is pressed. Without readable input devices
// it logs and returns; playback then runs until ctx ends.
func StopOnKeys(ctx context.Context, l logger, onStop func()) {
	if onStop == nil {
		return
	}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices, stop keys disabled")
		}
		return
	}

	var once sync.Once
	stop := func(code uint16) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "key %d pressed, stopping", code)
			}
			onStop()
		})
	}
	for _, path := range paths {
		go watchDevice(ctx, path, stop)
	}
}

func watchDevice(ctx context.Context, path string, stop func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	tvSize := binary.Size(unix.Timeval{})
	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, code := range keyPresses(buf[:n], tvSize) {
			if stopKeys[code] {
				stop(code)
				return
			}
		}
	}
}

// keyPresses decodes input_event records (timeval, u16 type, u16 code,
// s32 value) and returns the codes of key-down events.
func keyPresses(data []byte, tvSize int) []uint16 {
	size := tvSize + 8
	var codes []uint16
	for off := 0; off+size <= len(data); off += size {
		rec := data[off+tvSize : off+size]
		typ := binary.LittleEndian.Uint16(rec[0:2])
		code := binary.LittleEndian.Uint16(rec[2:4])
		value := int32(binary.LittleEndian.Uint32(rec[4:8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
