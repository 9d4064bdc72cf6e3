package printer

import "io"

// Writer is the write capability a transport must provide. Write delivers
// all of data to the device or returns the transport's error; a partial
// write is never reported as success.
type Writer interface {
	Write(data []byte) error
}

// Reader is the optional read capability, needed only by callers that poll
// printer status. Read returns the number of bytes read, 0 when no data is
// available. Timeout policy belongs to the transport.
type Reader interface {
	Read(buf []byte) (int, error)
}

// ReadWriter groups both transport capabilities.
type ReadWriter interface {
	Writer
	Reader
}

// IOAdapter presents a driver transport as a standard io.ReadWriter, for
// code written against the io interfaces. It forwards calls unchanged and
// adds no protocol logic.
type IOAdapter struct {
	Transport ReadWriter
}

// NewIOAdapter wraps the given transport.
func NewIOAdapter(t ReadWriter) *IOAdapter {
	return &IOAdapter{Transport: t}
}

// Write forwards to the transport and reports the full length on success;
// the transport contract is all-or-fail, so there is no shorter outcome.
func (a *IOAdapter) Write(p []byte) (int, error) {
	if err := a.Transport.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (a *IOAdapter) Read(p []byte) (int, error) {
	return a.Transport.Read(p)
}

// FromIO presents a standard io.ReadWriter as a driver transport. Write
// loops until the whole buffer is accepted, so a short write from the
// underlying writer never leaks through as success.
type FromIO struct {
	RW io.ReadWriter
}

// NewFromIO wraps the given io.ReadWriter.
func NewFromIO(rw io.ReadWriter) *FromIO {
	return &FromIO{RW: rw}
}

func (f *FromIO) Write(data []byte) error {
	for len(data) > 0 {
		n, err := f.RW.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (f *FromIO) Read(buf []byte) (int, error) {
	return f.RW.Read(buf)
}
