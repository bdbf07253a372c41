package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/quic-go/quic-go"

	"liftsim/src/types"
)

const (
	MaxMessageSize = 1 << 20
	StreamTimeout  = 5 * time.Second
)

// Backend is the simulation the server exposes.
type Backend interface {
	Snapshot() types.Snapshot
	Elevator(id int) (types.Elevator, bool)
	SubmitRequest(fromFloor, toFloor int) types.RequestResult
	StartSimulation() error
	StopSimulation() error
	StartGenerator() error
	StopGenerator() error
}

// Server answers one command per QUIC stream.
type Server struct {
	ln      *quic.Listener
	backend Backend
	peers   *peerManager
	closed  atomic.Bool
}

func Listen(addr string, backend Backend) (*Server, error) {
	tlsConf, err := newServerTLSConfig()
	if err != nil {
		return nil, fmt.Errorf("server tls config: %w", err)
	}

	ln, err := quic.ListenAddr(addr, tlsConf, newQUICConfig())
	if err != nil {
		return nil, fmt.Errorf("quic listen: %w", err)
	}
	slog.Info("Listening for commands", "addr", ln.Addr())
	return &Server{ln: ln, backend: backend, peers: newPeerManager()}, nil
}

func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until ctx is cancelled or the server is closed.
func (s *Server) Serve(ctx context.Context) error {
	for {
		conn, err := s.ln.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || s.closed.Load() {
				return nil
			}
			return fmt.Errorf("quic accept: %w", err)
		}
		go s.handleConn(ctx, conn)
	}
}

// Clients returns the number of open client connections.
func (s *Server) Clients() int {
	return s.peers.count()
}

func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.peers.close()
	return s.ln.Close()
}

func (s *Server) handleConn(ctx context.Context, conn *quic.Conn) {
	s.peers.add(conn)
	defer s.peers.remove(conn)
	for {
		stream, err := conn.AcceptStream(ctx)
		if err != nil {
			slog.Debug("Client disconnected", "remote", conn.RemoteAddr(), "reason", err)
			return
		}
		go s.handleStream(stream)
	}
}

func (s *Server) handleStream(stream *quic.Stream) {
	defer stream.Close()
	_ = stream.SetDeadline(time.Now().Add(StreamTimeout))

	var resp types.Response
	cmd, err := readMessage[types.Command](stream)
	if err != nil {
		slog.Warn("Malformed command", "err", err)
		resp = failure("malformed command: " + err.Error())
	} else {
		resp = handleCommand(s.backend, cmd)
	}

	if err := writeMessage(stream, resp); err != nil {
		slog.Warn("Failed to write response", "kind", cmd.Kind, "err", err)
	}
}

// readMessage decodes one JSON message terminated by the end of the stream.
func readMessage[T any](r io.Reader) (T, error) {
	var msg T
	data, err := io.ReadAll(io.LimitReader(r, MaxMessageSize))
	if err != nil {
		return msg, fmt.Errorf("read message: %w", err)
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}

func writeMessage(w io.Writer, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
