package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"outpass-backend/internal/models"
	"outpass-backend/internal/timeutil"
)

// Server is the warden ops dashboard backend. It runs on its own port,
// exposes process and database stats, and pushes live outpass activity
// to connected dashboard clients over websocket.
type Server struct {
	db         *pgxpool.Pool
	port       int
	events     []ActivityEvent
	eventsMux  sync.RWMutex
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan ActivityEvent
}

// ActivityEvent is one outpass lifecycle step: a submission, an entry
// marking or a deletion.
type ActivityEvent struct {
	ID          int       `json:"id"`
	Kind        string    `json:"kind"`
	Action      string    `json:"action"`
	OutpassID   int       `json:"outpass_id"`
	StudentName string    `json:"student_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type DashboardStats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	DBSize            string  `json:"db_size"`
	Uptime            string  `json:"uptime"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`
	HomeVisitsTotal   int     `json:"home_visits_total"`
	HomeVisitsOut     int     `json:"home_visits_out"`
	OutingsTotal      int     `json:"outings_total"`
	OutingsOut        int     `json:"outings_out"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// recentEvents caps the in-memory feed kept for late-joining clients.
const recentEvents = 200

func NewServer(db *pgxpool.Pool, port int) *Server {
	return &Server{
		db:        db,
		port:      port,
		events:    make([]ActivityEvent, 0),
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan ActivityEvent, 64),
	}
}

// PublishActivity records an outpass lifecycle event and fans it out to
// connected dashboard clients. Safe to call from request goroutines.
func (s *Server) PublishActivity(kind models.OutpassKind, action string, id int, studentName string) {
	event := ActivityEvent{
		Kind:        string(kind),
		Action:      action,
		OutpassID:   id,
		StudentName: studentName,
		Timestamp:   timeutil.Now(),
	}

	s.eventsMux.Lock()
	event.ID = len(s.events) + 1
	s.events = append(s.events, event)
	if len(s.events) > recentEvents {
		s.events = s.events[len(s.events)-recentEvents:]
	}
	s.eventsMux.Unlock()

	// Drop rather than block when the broadcaster is behind.
	select {
	case s.broadcast <- event:
	default:
	}
}

func (s *Server) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", s.getStats).Methods("GET")
	r.HandleFunc("/api/activity", s.getActivity).Methods("GET")
	r.HandleFunc("/ws", s.handleWebSocket)

	go s.handleBroadcast()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Monitoring] ops dashboard running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats := s.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) collectStats() DashboardStats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	s.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	s.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)

	var uptimeSec int
	s.db.QueryRow(ctx, "SELECT EXTRACT(EPOCH FROM (NOW() - pg_postmaster_start_time()))::int").Scan(&uptimeSec)

	var hvTotal, hvOut, outTotal, outOut int
	s.db.QueryRow(ctx, "SELECT count(*), count(*) FILTER (WHERE NOT entered) FROM home_visits").Scan(&hvTotal, &hvOut)
	s.db.QueryRow(ctx, "SELECT count(*), count(*) FILTER (WHERE NOT entered) FROM outings").Scan(&outTotal, &outOut)

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	return DashboardStats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		DBSize:            formatBytes(uint64(dbSizeBytes)),
		Uptime:            formatUptime(uptimeSec),
		CPUPercent:        cpuPercent,
		MemoryPercent:     memStats.UsedPercent,
		MemoryUsed:        formatBytes(memStats.Used),
		MemoryTotal:       formatBytes(memStats.Total),
		DiskPercent:       diskStats.UsedPercent,
		DiskUsed:          formatBytes(diskStats.Used),
		DiskTotal:         formatBytes(diskStats.Total),
		HomeVisitsTotal:   hvTotal,
		HomeVisitsOut:     hvOut,
		OutingsTotal:      outTotal,
		OutingsOut:        outOut,
	}
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	s.eventsMux.RLock()
	defer s.eventsMux.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.events)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[Monitoring] websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			s.clientsMux.Lock()
			delete(s.clients, conn)
			s.clientsMux.Unlock()
			break
		}
	}
}

func (s *Server) handleBroadcast() {
	for event := range s.broadcast {
		s.clientsMux.Lock()
		for client := range s.clients {
			if err := client.WriteJSON(event); err != nil {
				client.Close()
				delete(s.clients, client)
			}
		}
		s.clientsMux.Unlock()
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
