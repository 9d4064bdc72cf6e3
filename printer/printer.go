// Package printer encodes ESC/POS print operations into the byte
// sequences understood by thermal receipt printers and sends them over a
// byte-oriented transport.
package printer

import (
	"github.com/nanoprint/escpos/util"
)

// Printer sends ESC/POS commands to a single transport. It keeps no
// protocol state between calls; the printer firmware is the only stateful
// party. Every method performs exactly one transport write, except Image
// which performs two (header, then bitmap). Transport errors are returned
// unchanged; nothing is retried, buffered or logged here.
//
// A Printer is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Printer struct {
	t Writer
}

// NewPrinter wraps the given transport. The printer owns the transport for
// its lifetime; opening and closing it stays with the caller.
func NewPrinter(t Writer) *Printer {
	return &Printer{t: t}
}

// Write sends text verbatim as UTF-8 bytes. Control bytes embedded in the
// text are passed through uninterpreted; avoiding protocol collisions is
// the caller's responsibility.
func (p *Printer) Write(text string) error {
	return p.t.Write([]byte(text))
}

// WriteLine sends text followed by a line feed.
func (p *Printer) WriteLine(text string) error {
	if err := p.Write(text); err != nil {
		return err
	}
	return p.t.Write([]byte{'\n'})
}

// Init resets the printer firmware state (ESC @).
func (p *Printer) Init() error {
	return p.Raw([]byte{esc, '@'})
}

// Linefeed prints the line buffer and advances one line.
func (p *Printer) Linefeed() error {
	return p.Raw([]byte{'\n'})
}

// Feed advances the paper by n print lines. n=0 is a legal no-op.
func (p *Printer) Feed(lines uint8) error {
	return p.Raw([]byte{esc, 'd', lines})
}

// Cut severs the paper using the given mode.
func (p *Printer) Cut(mode CutMode) error {
	return p.Raw([]byte{gs, 'V', mode.code()})
}

// SetBold enables or disables emphasized printing.
func (p *Printer) SetBold(on bool) error {
	return p.Raw([]byte{esc, 'E', flag(on)})
}

// SetUnderline selects the underline style.
func (p *Printer) SetUnderline(mode UnderlineMode) error {
	return p.Raw([]byte{esc, '-', mode.code()})
}

// SetAlign selects horizontal alignment.
func (p *Printer) SetAlign(align Align) error {
	return p.Raw([]byte{esc, 'a', align.code()})
}

// SetJustification selects text justification. Same wire command as
// SetAlign, kept as a second name for callers used to that vocabulary.
func (p *Printer) SetJustification(mode Justification) error {
	return p.Raw([]byte{esc, 'a', mode.code()})
}

// SetFont selects the printer font.
func (p *Printer) SetFont(font Font) error {
	return p.Raw([]byte{esc, 'M', font.code()})
}

// SetSize sets the character magnification. Each multiplier is silently
// clamped to 0..7; the protocol reserves 3 bits per axis.
func (p *Printer) SetSize(width, height uint8) error {
	if width > 7 {
		width = 7
	}
	if height > 7 {
		height = 7
	}
	return p.Raw([]byte{gs, '!', width<<4 | height})
}

// SetInvert enables or disables white-on-black printing.
func (p *Printer) SetInvert(on bool) error {
	return p.Raw([]byte{gs, 'B', flag(on)})
}

// SetDensity selects the print density level.
func (p *Printer) SetDensity(level Density) error {
	return p.Raw([]byte{gs, '|', level.code()})
}

// SetPrintSpeed selects the print speed.
func (p *Printer) SetPrintSpeed(speed PrintSpeed) error {
	return p.Raw([]byte{fs, 'P', speed.code()})
}

// SetBaudRate reconfigures the printer's serial baud rate (vendor
// extension). The value is sent verbatim, little-endian, without checking
// it against any list of real baud rates.
func (p *Printer) SetBaudRate(baud uint32) error {
	cmd := make([]byte, 0, len(cmdBaudRate)+4)
	cmd = append(cmd, cmdBaudRate...)
	cmd = append(cmd, util.IntLowHigh(int(baud), 4)...)
	return p.Raw(cmd)
}

// SetMaxSpeed sets the printer's speed limit (vendor extension). The raw
// byte is sent unvalidated.
func (p *Printer) SetMaxSpeed(limit uint8) error {
	cmd := make([]byte, 0, len(cmdMaxSpeed)+1)
	cmd = append(cmd, cmdMaxSpeed...)
	cmd = append(cmd, limit)
	return p.Raw(cmd)
}

// SetBlackMark enables or disables black mark paper handling (vendor
// extension).
func (p *Printer) SetBlackMark(on bool) error {
	b := byte(0x66)
	if on {
		b = 0x44
	}
	cmd := make([]byte, 0, len(cmdBlackMark)+1)
	cmd = append(cmd, cmdBlackMark...)
	cmd = append(cmd, b)
	return p.Raw(cmd)
}

// CashDrawer sends the drawer kick pulse.
func (p *Printer) CashDrawer() error {
	return p.Raw([]byte{esc, 'p', 0x00, 0x0A, 0xFF})
}

// Raw sends caller-supplied bytes unmodified. Escape hatch for commands
// the driver does not model.
func (p *Printer) Raw(data []byte) error {
	return p.t.Write(data)
}

func flag(on bool) byte {
	if on {
		return 0x01
	}
	return 0x00
}
