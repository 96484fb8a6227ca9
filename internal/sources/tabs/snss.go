package tabs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
)

// SNSS is Chromium's session-snapshot container: a "SNSS" magic plus a
// version, followed by length-prefixed commands. Tab navigation state is
// carried in pickled payloads.
const snssMagic = "SNSS"

// UpdateTabNavigation is command 1 in Tabs_* streams and command 6 in
// Session_* streams; both use the same pickled payload layout.
const (
	commandUpdateTabNavigationTabs    = 1
	commandUpdateTabNavigationSession = 6
)

var errNotSNSS = errors.New("not an SNSS file")

type snssCommand struct {
	id      uint8
	payload []byte
}

// parseCommands splits an SNSS file into its raw command stream. A
// truncated tail ends the stream without error; commands already read are
// returned.
func parseCommands(data []byte) ([]snssCommand, error) {
	if len(data) < 8 || string(data[:4]) != snssMagic {
		return nil, errNotSNSS
	}
	version := int32(binary.LittleEndian.Uint32(data[4:8]))
	if version != 1 && version != 3 {
		return nil, fmt.Errorf("unsupported SNSS version %d", version)
	}

	var commands []snssCommand
	rest := data[8:]
	for len(rest) >= 2 {
		size := int(binary.LittleEndian.Uint16(rest))
		rest = rest[2:]
		if size == 0 || size > len(rest) {
			break
		}
		commands = append(commands, snssCommand{id: rest[0], payload: rest[1:size]})
		rest = rest[size:]
	}

	return commands, nil
}

// tabNavigation is one navigation entry of one tab.
type tabNavigation struct {
	tabID int32
	index int32
	url   string
	title string
}

// decodeTabNavigation unpacks an UpdateTabNavigation payload: a pickle
// holding tab id, navigation index, URL (8-bit string) and title (UTF-16).
func decodeTabNavigation(payload []byte) (tabNavigation, error) {
	var nav tabNavigation

	p, err := newPickle(payload)
	if err != nil {
		return nav, err
	}
	if nav.tabID, err = p.readInt32(); err != nil {
		return nav, err
	}
	if nav.index, err = p.readInt32(); err != nil {
		return nav, err
	}
	if nav.url, err = p.readString(); err != nil {
		return nav, err
	}
	if nav.title, err = p.readString16(); err != nil {
		return nav, err
	}

	return nav, nil
}

// pickle reads Chromium's Pickle format: a uint32 payload length followed
// by fields, each padded to 4-byte alignment.
type pickle struct {
	buf []byte
	off int
}

func newPickle(data []byte) (*pickle, error) {
	if len(data) < 4 {
		return nil, io.ErrUnexpectedEOF
	}
	n := int(binary.LittleEndian.Uint32(data))
	if n < 0 || n > len(data)-4 {
		return nil, io.ErrUnexpectedEOF
	}
	return &pickle{buf: data[4 : 4+n]}, nil
}

func (p *pickle) readInt32() (int32, error) {
	if p.off+4 > len(p.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	v := int32(binary.LittleEndian.Uint32(p.buf[p.off:]))
	p.off += 4
	return v, nil
}

func (p *pickle) readString() (string, error) {
	n, err := p.readInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || p.off+int(n) > len(p.buf) {
		return "", io.ErrUnexpectedEOF
	}
	s := string(p.buf[p.off : p.off+int(n)])
	p.off += int(n)
	p.align()
	return s, nil
}

func (p *pickle) readString16() (string, error) {
	n, err := p.readInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || p.off+2*int(n) > len(p.buf) {
		return "", io.ErrUnexpectedEOF
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(p.buf[p.off+2*i:])
	}
	p.off += 2 * int(n)
	p.align()
	return string(utf16.Decode(units)), nil
}

// align advances the cursor to the next 4-byte boundary.
func (p *pickle) align() {
	if rem := p.off % 4; rem != 0 {
		p.off += 4 - rem
	}
}
