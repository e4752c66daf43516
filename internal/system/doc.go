// Package system holds the Linux console plumbing used by the framebuffer
// preview: virtual terminal mode switching and evdev key watching.
package system
