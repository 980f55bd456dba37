package osc

import (
	"errors"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, MaxPacketSize)
		return &b
	},
}

// Server receives OSC packets over UDP and hands them to a Dispatcher.
// Malformed datagrams are dropped; if Logger is set they are logged at
// debug level. The codec itself never logs — a truncated datagram
// cannot be completed, so dropping and waiting for the next one is all
// a receiver can do.
type Server struct {
	Addr        string
	Dispatcher  *Dispatcher
	ReadTimeout time.Duration
	Logger      *zap.Logger
}

// ListenAndServe listens on the server's UDP address and serves
// incoming packets until the connection fails.
func (s *Server) ListenAndServe() error {
	conn, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	return s.Serve(conn)
}

// Serve reads packets from conn and dispatches them. Each datagram is
// dispatched on its own goroutine; OSC over UDP carries one packet per
// datagram, so there is no ordering to preserve across reads.
func (s *Server) Serve(conn net.PacketConn) error {
	if s.Dispatcher == nil {
		s.Dispatcher = NewDispatcher()
	}

	var tempDelay time.Duration
	for {
		pkt, addr, err := s.readPacket(conn)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			if errors.Is(err, ErrParse) || errors.Is(err, ErrUnderrun) {
				s.logger().Debug("dropping malformed packet",
					zap.Stringer("from", addr),
					zap.Error(err))
				continue
			}
			return err
		}
		tempDelay = 0
		go s.serve(pkt, addr)
	}
}

func (s *Server) serve(pkt Packet, addr net.Addr) {
	defer func() {
		if r := recover(); r != nil {
			s.logger().Error("panic handling packet",
				zap.Stringer("from", addr),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	s.Dispatcher.Dispatch(pkt)
}

// ReceivePacket reads and decodes a single packet from conn, for
// callers that want raw packets instead of dispatch.
func (s *Server) ReceivePacket(conn net.PacketConn) (Packet, net.Addr, error) {
	return s.readPacket(conn)
}

func (s *Server) readPacket(conn net.PacketConn) (Packet, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	buf := bufPool.Get().(*[]byte)
	defer bufPool.Put(buf)

	n, addr, err := conn.ReadFrom(*buf)
	if err != nil {
		return nil, addr, err
	}
	data := make([]byte, n)
	copy(data, *buf)

	p, err := ParsePacket(data)
	return p, addr, err
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
