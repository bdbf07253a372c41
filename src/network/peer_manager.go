package network

import (
	"log/slog"

	"github.com/quic-go/quic-go"
)

type peerEvent struct {
	conn      *quic.Conn
	connected bool
}

// peerManager tracks open client connections. It owns the set; other
// goroutines talk to it through channels.
type peerManager struct {
	events   chan peerEvent
	countCh  chan chan int
	closeAll chan struct{}
	done     chan struct{}
}

func newPeerManager() *peerManager {
	pm := &peerManager{
		events:   make(chan peerEvent),
		countCh:  make(chan chan int),
		closeAll: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go pm.run()
	return pm
}

func (pm *peerManager) run() {
	defer close(pm.done)
	peers := make(map[*quic.Conn]struct{})
	for {
		select {
		case ev := <-pm.events:
			if ev.connected {
				peers[ev.conn] = struct{}{}
				slog.Info("New client connected", "remote", ev.conn.RemoteAddr(), "totalClients", len(peers))
			} else if _, ok := peers[ev.conn]; ok {
				delete(peers, ev.conn)
				slog.Info("Client lost", "remote", ev.conn.RemoteAddr(), "totalClients", len(peers))
			}
		case reply := <-pm.countCh:
			reply <- len(peers)
		case <-pm.closeAll:
			for conn := range peers {
				_ = conn.CloseWithError(0, "server shutting down")
			}
			return
		}
	}
}

func (pm *peerManager) send(ev peerEvent) {
	select {
	case pm.events <- ev:
	case <-pm.done:
	}
}

func (pm *peerManager) add(conn *quic.Conn)    { pm.send(peerEvent{conn: conn, connected: true}) }
func (pm *peerManager) remove(conn *quic.Conn) { pm.send(peerEvent{conn: conn}) }

func (pm *peerManager) count() int {
	reply := make(chan int, 1)
	select {
	case pm.countCh <- reply:
		return <-reply
	case <-pm.done:
		return 0
	}
}

// close disconnects every tracked client and stops the manager.
func (pm *peerManager) close() {
	select {
	case pm.closeAll <- struct{}{}:
		<-pm.done
	case <-pm.done:
	}
}
