package printer

// ESC/POS control bytes.
const (
	esc = 0x1B
	gs  = 0x1D
	fs  = 0x1F
)

// Vendor extension command prefixes. The byte values are wire protocol;
// changing any of them is a breaking change.
var (
	cmdBaudRate  = []byte{esc, '#', '#', 'S', 'B', 'D', 'R'}
	cmdMaxSpeed  = []byte{esc, '#', '#', 'S', 'T', 'S', 'P'}
	cmdBlackMark = []byte{fs, esc, fs, 0x80, 0x04, 0x05, 0x06}
)

// CutMode selects how Cut severs the paper.
type CutMode int

const (
	// CutFull cuts the paper completely.
	CutFull CutMode = iota
	// CutPartial leaves a small bridge of paper.
	CutPartial
)

func (m CutMode) code() byte {
	switch m {
	case CutPartial:
		return 0x01
	default:
		return 0x00
	}
}

// UnderlineMode selects the underline style.
type UnderlineMode int

const (
	UnderlineNone UnderlineMode = iota
	UnderlineSingle
	UnderlineDouble
)

func (m UnderlineMode) code() byte {
	switch m {
	case UnderlineSingle:
		return 0x01
	case UnderlineDouble:
		return 0x02
	default:
		return 0x00
	}
}

// Align selects horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) code() byte {
	switch a {
	case AlignCenter:
		return 0x01
	case AlignRight:
		return 0x02
	default:
		return 0x00
	}
}

// Font selects one of the printer's built-in fonts.
type Font int

const (
	FontA Font = iota
	FontB
)

func (f Font) code() byte {
	switch f {
	case FontB:
		return 0x01
	default:
		return 0x00
	}
}

// Justification selects text justification. It encodes to the same wire
// command as Align; both names are kept on purpose.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

func (j Justification) code() byte {
	switch j {
	case JustifyCenter:
		return 0x01
	case JustifyRight:
		return 0x02
	default:
		return 0x00
	}
}

// Density selects the print density level.
type Density int

const (
	DensityLevel0 Density = iota
	DensityLevel1
	DensityLevel2
	DensityLevel3
	DensityLevel4
	DensityLevel5
	DensityLevel6
	DensityLevel7
	DensityLevel8
)

func (d Density) code() byte {
	return byte(d)
}

// PrintSpeed selects one of the printer's speed settings.
type PrintSpeed int

const (
	Speed1 PrintSpeed = iota
	Speed2
	Speed3
	Speed4
)

func (s PrintSpeed) code() byte {
	return byte(s)
}
