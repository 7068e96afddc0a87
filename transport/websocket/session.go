package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/match"
)

const sendBufferSize = 256

var (
	ErrSessionClosed = errors.New("session closed")
	ErrSlowConsumer  = errors.New("session send buffer is full")
)

// Session is one authenticated websocket connection. It is the presence the
// session's matches broadcast to.
type Session struct {
	logger *slog.Logger
	conf   config.Session

	conn      *websocket.Conn
	userID    string
	sessionID string

	send      chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	matches     map[string]*match.Match
	pendingJoin map[string]string
}

func newSession(logger *slog.Logger, conf config.Session, conn *websocket.Conn, userID, sessionID string) *Session {
	return &Session{
		logger:      logger.With("component", "session", "identity", userID, "sessionID", sessionID),
		conf:        conf,
		conn:        conn,
		userID:      userID,
		sessionID:   sessionID,
		send:        make(chan []byte, sendBufferSize),
		closed:      make(chan struct{}),
		matches:     make(map[string]*match.Match),
		pendingJoin: make(map[string]string),
	}
}

func (that *Session) UserID() string {
	return that.userID
}

func (that *Session) SessionID() string {
	return that.sessionID
}

// Joined acknowledges a pending match_join with the match's current presences.
func (that *Session) Joined(matchID string, presences []string) {
	that.mu.Lock()
	cid := that.pendingJoin[matchID]
	delete(that.pendingJoin, matchID)
	that.mu.Unlock()

	if err := that.reply(actionMatch, cid, MatchPayload{
		MatchID:   matchID,
		Self:      that.userID,
		Presences: presences,
	}); err != nil {
		that.logger.Warn("failed to acknowledge match join", "matchID", matchID, "error", err)
	}
}

// Send pushes match data to the client.
func (that *Session) Send(matchID string, opCode int64, data []byte) error {
	return that.reply(actionMatchData, "", MatchDataPayload{
		MatchID: matchID,
		OpCode:  opCode,
		Data:    data,
	})
}

func (that *Session) reply(action, cid string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	messageBytes, err := json.Marshal(Message{Action: action, CID: cid, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return that.enqueue(messageBytes)
}

func (that *Session) replyError(cid string, err error) error {
	return that.reply(actionError, cid, errorPayload(err))
}

// enqueue never blocks. A client that cannot keep up is disconnected.
func (that *Session) enqueue(data []byte) error {
	select {
	case <-that.closed:
		return ErrSessionClosed
	default:
	}

	select {
	case that.send <- data:
		return nil
	default:
		that.logger.Warn("send buffer full, closing session")
		that.Close()
		return ErrSlowConsumer
	}
}

func (that *Session) Close() {
	that.closeOnce.Do(func() {
		close(that.closed)
	})
}

func (that *Session) beginJoin(matchID, cid string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pendingJoin[matchID] = cid
}

func (that *Session) endJoin(matchID string, joined *match.Match) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.pendingJoin, matchID)

	if joined != nil {
		that.matches[matchID] = joined
	}
}

func (that *Session) joinedMatch(matchID string) (*match.Match, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	joined, ok := that.matches[matchID]
	return joined, ok
}

func (that *Session) forgetMatch(matchID string) (*match.Match, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	joined, ok := that.matches[matchID]
	delete(that.matches, matchID)

	return joined, ok
}

// leaveAll leaves every joined match, a closed socket never resumes.
func (that *Session) leaveAll() {
	that.mu.Lock()
	matches := that.matches
	that.matches = make(map[string]*match.Match)
	that.mu.Unlock()

	for matchID, joined := range matches {
		if err := joined.Leave(that); err != nil {
			that.logger.Debug("failed to leave match", "matchID", matchID, "error", err)
		}
	}
}

// readPump reads client frames until the connection fails and hands each to handle.
func (that *Session) readPump(handle func(data []byte)) {
	defer that.Close()

	that.conn.SetReadLimit(that.conf.MaxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				that.logger.Warn("websocket read error", "error", err)
			}
			return
		}

		handle(data)
	}
}

// writePump is the only writer of the connection.
func (that *Session) writePump() {
	ticker := time.NewTicker(that.conf.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("websocket write failed", "error", err)
				that.Close()
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.Close()
				return
			}
		case <-that.closed:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))
			_ = that.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
