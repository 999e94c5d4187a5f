package serve

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dtnitsch/wordcalc/models"
)

const (
	liveReadLimit = 1 << 20
	liveIdle      = 5 * time.Minute
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveMessage is sent after every text update on /v1/live.
type LiveMessage struct {
	Type     string            `json:"type"` // "stats" or "error"
	Headline string            `json:"headline,omitempty"`
	Report   *models.Report    `json:"report,omitempty"`
	Error    *models.ErrorInfo `json:"error,omitempty"`
}

// handleLive upgrades to a WebSocket. Each incoming JSON StatsRequest is
// answered with a LiveMessage; the connection is served by this goroutine.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.liveConnection.Inc()
	defer s.metrics.liveConnection.Dec()

	conn.SetReadLimit(liveReadLimit)
	f := s.analyzer.Formatter()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(liveIdle))

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Live connection closed", "error", err)
			}
			return
		}

		var req models.StatsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			msg := LiveMessage{Type: "error", Error: &models.ErrorInfo{
				Type:    models.ErrorTypeInvalidInput,
				Message: err.Error(),
			}}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			continue
		}

		report := s.analyzer.Analyze(req)
		s.metrics.wordsAnalyzed.Add(float64(report.Stats.Counts.Words))
		msg := LiveMessage{
			Type:     "stats",
			Headline: f.Headline(report.Stats.Counts),
			Report:   report,
		}
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug("Live write failed", "error", err)
			return
		}
	}
}
