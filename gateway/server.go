package gateway

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"

	"chat-registry/contract"
	"chat-registry/domain/event"
	"chat-registry/errors"
	"chat-registry/sink"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
	"github.com/teris-io/shortid"
)

// Server exposes the host over websocket connections.
type Server struct {
	log                  *slog.Logger
	host                 contract.IHost
	counter              *sink.Counter
	timeline             *sink.Timeline
	upgrader             websocket.Upgrader
	connectionBufferSize int
}

func NewServer(log *slog.Logger, host contract.IHost, counter *sink.Counter, timeline *sink.Timeline,
	connectionBufferSize int) *Server {
	return &Server{
		log:      log,
		host:     host,
		counter:  counter,
		timeline: timeline,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		connectionBufferSize: connectionBufferSize,
	}
}

// Handler routes /ws and /healthz behind access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.serveWs)
	mux.HandleFunc("GET /healthz", s.health)

	access := &logWriter{logger: s.log, source: "http"}
	recovery := log.New(&logWriter{logger: s.log, source: "http", isError: true}, "", 0)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recovery))(
		handlers.CombinedLoggingHandler(access, mux),
	)
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		http.Error(w, errors.ErrMissingUser.Error(), http.StatusBadRequest)
		return
	}
	id, err := shortid.Generate()
	if err != nil {
		s.log.Error("Unable to generate session id", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	s.log.Debug("Session opened", "session", id, "user", user)
	c := NewClient(s.log, id, user, conn, s.host, s.connectionBufferSize)
	go c.Write()
	c.Read(r.Context())
}

type Health struct {
	Users      int                   `json:"users"`
	Rooms      int                   `json:"rooms"`
	Events     map[event.Type]uint64 `json:"events"`
	Recent     int                   `json:"recent_events"`
	RecentRoom map[string]int        `json:"recent_events_by_room"`
	RSSBytes   uint64                `json:"rss_bytes"`
	CPUPercent float64               `json:"cpu_percent"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	users, rooms := s.host.Stats()
	res := Health{
		Users:      users,
		Rooms:      rooms,
		Events:     s.counter.Counts(),
		Recent:     len(s.timeline.Recent()),
		RecentRoom: lo.SliceToMap(s.host.ListRooms(), func(room string) (string, int) {
			return room, len(s.timeline.ForRoom(room))
		}),
	}
	if rss, cpu, err := selfStats(); err != nil {
		s.log.Warn("Unable to collect process stats", "error", err)
	} else {
		res.RSSBytes, res.CPUPercent = rss, cpu
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.log.Error("Unable to encode health", "error", err)
	}
}

func selfStats() (uint64, float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpu, nil
}
