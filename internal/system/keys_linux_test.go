//go:build linux

package system

import (
	"encoding/binary"
	"reflect"
	"testing"
)

func inputEvent(tvSize int, typ, code uint16, value int32) []byte {
	rec := make([]byte, tvSize+8)
	binary.LittleEndian.PutUint16(rec[tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[tvSize+4:], uint32(value))
	return rec
}

func TestKeyPresses(t *testing.T) {
	const tv = 16
	var data []byte
	data = append(data, inputEvent(tv, evKey, keyQ, 1)...)
	data = append(data, inputEvent(tv, evKey, keyQ, 0)...)  // release
	data = append(data, inputEvent(tv, 0x00, 0, 0)...)      // EV_SYN
	data = append(data, inputEvent(tv, evKey, keyF4, 2)...) // autorepeat
	data = append(data, inputEvent(tv, evKey, keyEsc, 1)...)
	data = append(data, 0xff, 0xff) // truncated tail

	got := keyPresses(data, tv)
	if want := []uint16{keyQ, keyEsc}; !reflect.DeepEqual(got, want) {
		t.Errorf("keyPresses = %v, want %v", got, want)
	}
}

func TestRestoreWithoutEnterIsNoop(t *testing.T) {
	var c Console
	if err := c.Restore(); err != nil {
		t.Errorf("Restore = %v", err)
	}
}
