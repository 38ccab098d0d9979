package session

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// ReadLoop continuously reads messages from the WebSocket connection,
// decodes them, and queues events for the loop. It blocks until the
// connection is closed or a read error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()

	if s.conn == nil {
		<-s.done
		return
	}

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.logger.Error("event decode error", "error", err)
			continue
		}
		if ev.HID == "" || ev.Name == "" {
			s.logger.Debug("dropping malformed event", "raw", string(msg))
			continue
		}

		s.QueueEvent(&ev)
	}
}
