package remote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	readLimit    = 1 << 20
	writeTimeout = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

// Sink applies a command on the graph's goroutine and reports the result.
type Sink func(ctx context.Context, c Command) error

// Server accepts WebSocket clients on /ws and feeds their commands to a Sink.
type Server struct {
	sink     Sink
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(sink Sink, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		sink: sink,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler routes /ws to the WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled. The bound address is
// sent on ready once the listener is open.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready chan<- net.Addr) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	s.log.Info("remote listening", "addr", ln.Addr().String())
	if ready != nil {
		ready <- ln.Addr()
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ServeWS upgrades the request and runs the client's command loop.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log := s.log.With("client", conn.RemoteAddr().String())
	log.Info("client connected")

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.ping(ctx, conn)

	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read failed", "err", err)
			}
			log.Info("client disconnected")
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		reply := Reply{OK: true}
		c, err := Decode(data)
		if err == nil {
			err = s.sink(ctx, c)
		}
		if err != nil {
			reply = Reply{Error: err.Error()}
			log.Debug("command failed", "op", c.Op, "err", err)
		} else {
			log.Debug("command applied", "op", c.Op)
		}

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("write failed", "err", err)
			return
		}
	}
}

// ping keeps idle clients alive. Control frames may be written concurrently
// with WriteJSON.
func (s *Server) ping(ctx context.Context, conn *websocket.Conn) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
