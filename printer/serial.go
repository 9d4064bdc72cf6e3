package printer

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// SerialTransport drives a printer attached to a serial port. It satisfies
// Writer and Reader; the read timeout set at open keeps Read from blocking
// indefinitely when the printer has nothing to say.
type SerialTransport struct {
	port serial.Port
}

// OpenSerial opens portName at the given baud rate, 8N1.
func OpenSerial(portName string, baudRate int) (*SerialTransport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", portName, err)
	}

	return &SerialTransport{port: port}, nil
}

// ListSerialPorts returns the serial port names present on the system.
func ListSerialPorts() ([]string, error) {
	return serial.GetPortsList()
}

// Write delivers all of data to the port, retrying short writes.
func (s *SerialTransport) Write(data []byte) error {
	for len(data) > 0 {
		n, err := s.port.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Read reads into buf, returning 0 when the read timeout expires with no
// data available.
func (s *SerialTransport) Read(buf []byte) (int, error) {
	return s.port.Read(buf)
}

func (s *SerialTransport) Close() error {
	return s.port.Close()
}
