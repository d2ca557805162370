// Package snapshot parses .spc snapshot files into the register/RAM/DSP
// state a Machine needs to start playback. See SPEC_FULL.md section 4.6
// and section 6's file-format description.
package snapshot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spc700-sound/spcsound/curated"
)

const (
	magic       = "SNES-SPC700 Sound File Data v0.30"
	magicLen    = 33
	offTagType  = 0x23
	offVersion  = 0x24
	offRegsBase = 0x25
	offRAM      = 0x100
	ramSize     = 65536
	offDSPRegs  = 0x10100
	dspRegSize  = 128
	minFileLen  = offDSPRegs + dspRegSize
)

// ErrInvalidSnapshot is the pattern of the error Load and LoadReader
// return for a bad magic string, matchable via curated.Is. Short or
// unreadable input is reported under a different pattern that starts with
// the same text; curated.Is does not match it against ErrInvalidSnapshot.
const ErrInvalidSnapshot = "snapshot: invalid file"

// State is the fully parsed contents of a .spc file: everything a
// Machine needs to load via Machine.LoadState, plus best-effort ID666
// metadata for anything that wants to display it.
type State struct {
	PC, A, X, Y, PSW, SP uint8
	PCReg                uint16

	RAM     [ramSize]byte
	DSPRegs [dspRegSize]byte

	Tag ID666
}

// ID666 holds the best-effort song metadata tag. Per SPEC_FULL.md, a
// snapshot with an unrecognised or absent tag still loads; Tag is left
// zeroed in that case.
type ID666 struct {
	SongTitle   string
	GameTitle   string
	DumperName  string
	Comments    string
	BinaryTag   bool
}

// Load reads and parses a .spc file from disk data already in memory.
func Load(data []byte) (*State, error) {
	return LoadReader(bytes.NewReader(data))
}

// LoadReader parses a .spc file from r. The entire file is buffered in
// memory; .spc files are fixed at a small, bounded size.
func LoadReader(r io.Reader) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("%s: %v", ErrInvalidSnapshot, err)
	}
	if len(data) < minFileLen {
		return nil, curated.Errorf("%s: file too short (%d bytes)", ErrInvalidSnapshot, len(data))
	}
	if string(data[:len(magic)]) != magic {
		return nil, curated.Errorf(ErrInvalidSnapshot)
	}

	s := &State{}

	s.PCReg = uint16(data[offRegsBase]) | uint16(data[offRegsBase+1])<<8
	s.A = data[offRegsBase+2]
	s.X = data[offRegsBase+3]
	s.Y = data[offRegsBase+4]
	s.PSW = data[offRegsBase+5]
	s.SP = data[offRegsBase+6]

	copy(s.RAM[:], data[offRAM:offRAM+ramSize])
	copy(s.DSPRegs[:], data[offDSPRegs:offDSPRegs+dspRegSize])

	s.Tag = parseID666(data)

	return s, nil
}

func parseID666(data []byte) ID666 {
	var tag ID666
	if len(data) < magicLen+2 {
		return tag
	}
	tagType := data[offTagType]
	// tagType 0x1a historically marks binary ID666 fields; 0 marks text.
	// Either way the tag is best-effort: if the fixed-width fields look
	// unprintable, the fields are simply left empty rather than treated
	// as a load failure.
	tag.BinaryTag = tagType == 0x1a
	if len(data) < 0xd0 {
		return tag
	}
	tag.SongTitle = trimField(data[0x2e:0x4e])
	tag.GameTitle = trimField(data[0x4e:0x6e])
	tag.DumperName = trimField(data[0x6e:0x7e])
	tag.Comments = trimField(data[0x7e:0x9e])
	return tag
}

func trimField(raw []byte) string {
	n := bytes.IndexByte(raw, 0)
	if n < 0 {
		n = len(raw)
	}
	s := raw[:n]
	for i, b := range s {
		if b < 0x20 || b > 0x7e {
			s = s[:i]
			break
		}
	}
	return string(s)
}

// String implements a human-readable one-line summary, for CLI banners.
func (s *State) String() string {
	if s.Tag.SongTitle == "" {
		return fmt.Sprintf("spc snapshot, pc=%#04x", s.PCReg)
	}
	return fmt.Sprintf("%q (%s), pc=%#04x", s.Tag.SongTitle, s.Tag.GameTitle, s.PCReg)
}
