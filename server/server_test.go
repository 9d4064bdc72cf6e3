package server

import (
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWriter is a driver transport capturing everything written to it.
type mockWriter struct {
	mu   sync.Mutex
	data []byte
	err  error
}

func (m *mockWriter) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data = append(m.data, data...)
	return nil
}

func (m *mockWriter) bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func TestNew(t *testing.T) {
	mw := &mockWriter{}
	s := New(mw, "localhost:9100", nil)

	assert.Equal(t, "localhost:9100", s.Address())
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.Addr())
}

func TestStartStop(t *testing.T) {
	s := New(&mockWriter{}, "127.0.0.1:0", nil)

	require.NoError(t, s.StartAsync())
	assert.True(t, s.IsRunning())
	require.NotNil(t, s.Addr())

	// Double start
	err := s.StartAsync()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	// Double stop is a no-op
	assert.NoError(t, s.Stop())
}

func TestForwardsClientBytes(t *testing.T) {
	mw := &mockWriter{}
	s := New(mw, "127.0.0.1:0", nil)

	require.NoError(t, s.StartAsync())
	defer s.Stop()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)

	payload := []byte("\x1B@receipt body\x1DV\x00")
	_, err = conn.Write(payload)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(payload, mw.bytes())
	}, time.Second, 10*time.Millisecond)
}

func TestMultipleConnections(t *testing.T) {
	mw := &mockWriter{}
	s := New(mw, "127.0.0.1:0", nil)

	require.NoError(t, s.StartAsync())
	defer s.Stop()

	for i := 0; i < 3; i++ {
		conn, err := net.Dial("tcp", s.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte{byte(i + 1)})
		require.NoError(t, err)
		require.NoError(t, conn.Close())
	}

	assert.Eventually(t, func() bool {
		return len(mw.bytes()) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestTransportFailureDropsConnection(t *testing.T) {
	mw := &mockWriter{err: errors.New("printer offline")}
	s := New(mw, "127.0.0.1:0", nil)

	require.NoError(t, s.StartAsync())
	defer s.Stop()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("job"))
	require.NoError(t, err)

	// Server closes the connection after the write fails.
	conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	assert.Error(t, err)
	assert.Empty(t, mw.bytes())
}

func TestInvalidAddress(t *testing.T) {
	s := New(&mockWriter{}, "invalid:address:9100", nil)

	err := s.StartAsync()
	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestStartBlocksUntilStop(t *testing.T) {
	s := New(&mockWriter{}, "127.0.0.1:0", nil)

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	require.Eventually(t, s.IsRunning, time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
