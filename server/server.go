// Package server bridges TCP clients to a printer transport, speaking the
// raw port-9100 convention: every byte a client sends is forwarded to the
// printer unmodified.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/nanoprint/escpos/printer"
)

// Server accepts TCP connections and forwards client bytes to a single
// printer transport. Each connection is served by its own goroutine;
// transport writes are serialized here because the driver does no locking
// of its own.
type Server struct {
	transport printer.Writer
	address   string
	log       *slog.Logger

	mu       sync.Mutex
	writeMu  sync.Mutex
	listener net.Listener
	running  bool
	wg       sync.WaitGroup
}

// New creates a server forwarding to t. A nil log falls back to
// slog.Default().
func New(t printer.Writer, address string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{transport: t, address: address, log: log}
}

// Start listens on the configured address and blocks serving connections
// until Stop is called.
func (s *Server) Start() error {
	if err := s.listen(); err != nil {
		return err
	}
	s.acceptLoop()
	return nil
}

// StartAsync starts serving in a background goroutine.
func (s *Server) StartAsync() error {
	if err := s.listen(); err != nil {
		return err
	}
	go s.acceptLoop()
	return nil
}

func (s *Server) listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server already running")
	}

	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	s.listener = l
	s.running = true
	s.log.Info("server listening", "address", l.Addr().String())
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.IsRunning() {
				s.log.Error("accept failed", "error", err)
			}
			return
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	s.log.Info("client connected", "remote", conn.RemoteAddr().String())

	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			s.writeMu.Lock()
			werr := s.transport.Write(buf[:n])
			s.writeMu.Unlock()
			if werr != nil {
				s.log.Error("printer write failed", "error", werr)
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				s.log.Warn("client read failed", "remote", conn.RemoteAddr().String(), "error", err)
			}
			return
		}
	}
}

// Stop closes the listener and waits for in-flight connections to finish.
// Stopping a stopped server is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	err := s.listener.Close()
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

// IsRunning reports whether the server is accepting connections.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.address
}

// Addr returns the bound listener address, or nil when not running.
// Useful when the server was configured with port 0.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	return s.listener.Addr()
}
