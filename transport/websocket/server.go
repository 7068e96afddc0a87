package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/match"
	"github.com/rocketscienceinc/tictactoe-arena/internal/pkg"
)

const (
	minDeviceIDLength = 10
	maxDeviceIDLength = 128
)

var errBadInput = errors.New("bad input")

type authHook interface {
	EnsureProfile(ctx context.Context, identity string) (bool, error)
}

type rpcCaller interface {
	Call(ctx context.Context, identity, id string, payload json.RawMessage) (json.RawMessage, error)
}

type matchResolver interface {
	Get(matchID string) (*match.Match, error)
}

type handlerFunc func(ctx context.Context, session *Session, message *Message) error

// Server upgrades authenticated requests and serves the session protocol.
type Server struct {
	logger *slog.Logger
	conf   config.Session

	players authHook
	rpc     rpcCaller
	matches matchResolver

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	mu       sync.Mutex
	sessions map[string]*Session
}

func New(logger *slog.Logger, conf config.Session, players authHook, rpc rpcCaller, matches matchResolver) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		conf:    conf,
		players: players,
		rpc:     rpc,
		matches: matches,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
		sessions: make(map[string]*Session),
	}

	server.handlers[actionRPC] = server.handleRPC
	server.handlers[actionMatchJoin] = server.handleMatchJoin
	server.handlers[actionMatchLeave] = server.handleMatchLeave
	server.handlers[actionMatchDataSend] = server.handleMatchDataSend

	return server
}

// Authenticate maps a device id to a player identity.
func Authenticate(deviceID string) (string, error) {
	if len(deviceID) < minDeviceIDLength || len(deviceID) > maxDeviceIDLength {
		return "", fmt.Errorf("%w: device id must be %d-%d characters", apperror.ErrUnauthenticated, minDeviceIDLength, maxDeviceIDLength)
	}

	return pkg.IdentityFromDevice(deviceID), nil
}

// ServeHTTP authenticates by device id, upgrades the connection and serves it until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	identity, err := Authenticate(req.URL.Query().Get("device_id"))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusUnauthorized)
		return
	}

	ctx := req.Context()

	if created, hookErr := that.players.EnsureProfile(ctx, identity); hookErr != nil {
		log.Error("failed to ensure player profile", "identity", identity, "error", hookErr)
	} else if created {
		log.Info("new player registered", "identity", identity)
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "error", err)
		return
	}

	session := newSession(that.logger, that.conf, conn, identity, pkg.GenerateNewSessionID())
	that.register(session)

	log.Info("session connected", "identity", identity, "sessionID", session.SessionID())

	go session.writePump()

	session.readPump(func(data []byte) {
		that.dispatch(ctx, session, data)
	})

	session.leaveAll()
	that.unregister(session)

	log.Info("session disconnected", "identity", identity, "sessionID", session.SessionID())
}

// Close disconnects every session.
func (that *Server) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, session := range that.sessions {
		session.Close()
	}
}

func (that *Server) register(session *Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.SessionID()] = session
}

func (that *Server) unregister(session *Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, session.SessionID())
}

func (that *Server) dispatch(ctx context.Context, session *Session, data []byte) {
	log := that.logger.With("method", "dispatch", "sessionID", session.SessionID())

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Debug("failed to unmarshal message", "error", err)
		_ = session.replyError("", fmt.Errorf("%w: malformed message", errBadInput))
		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action", "action", message.Action)
		_ = session.replyError(message.CID, fmt.Errorf("%w: unknown action %q", errBadInput, message.Action))
		return
	}

	if err := handler(ctx, session, &message); err != nil {
		log.Info("request failed", "action", message.Action, "error", err)

		if replyErr := session.replyError(message.CID, err); replyErr != nil {
			log.Debug("failed to send error", "error", replyErr)
		}
	}
}

func (that *Server) handleRPC(ctx context.Context, session *Session, message *Message) error {
	var request RPCPayload
	if err := json.Unmarshal(message.Payload, &request); err != nil {
		return fmt.Errorf("%w: %w", errBadInput, err)
	}

	response, err := that.rpc.Call(ctx, session.UserID(), request.ID, request.Payload)
	if err != nil {
		return err
	}

	return session.reply(actionRPC, message.CID, RPCPayload{ID: request.ID, Payload: response})
}

func (that *Server) handleMatchJoin(ctx context.Context, session *Session, message *Message) error {
	var request MatchJoinPayload
	if err := json.Unmarshal(message.Payload, &request); err != nil || request.MatchID == "" {
		return fmt.Errorf("%w: match_id is required", errBadInput)
	}

	joining, err := that.matches.Get(request.MatchID)
	if err != nil {
		return err
	}

	session.beginJoin(request.MatchID, message.CID)

	if err = joining.Join(ctx, session); err != nil {
		session.endJoin(request.MatchID, nil)

		if ctx.Err() != nil {
			_ = joining.Leave(session)
		}

		return err
	}

	session.endJoin(request.MatchID, joining)

	return nil
}

func (that *Server) handleMatchLeave(_ context.Context, session *Session, message *Message) error {
	var request MatchJoinPayload
	if err := json.Unmarshal(message.Payload, &request); err != nil || request.MatchID == "" {
		return fmt.Errorf("%w: match_id is required", errBadInput)
	}

	leaving, ok := session.forgetMatch(request.MatchID)
	if !ok {
		return nil
	}

	if err := leaving.Leave(session); err != nil && !errors.Is(err, apperror.ErrMatchEnded) {
		return err
	}

	return nil
}

func (that *Server) handleMatchDataSend(_ context.Context, session *Session, message *Message) error {
	var request MatchDataPayload
	if err := json.Unmarshal(message.Payload, &request); err != nil || request.MatchID == "" {
		return fmt.Errorf("%w: match_id is required", errBadInput)
	}

	joined, ok := session.joinedMatch(request.MatchID)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, request.MatchID)
	}

	if err := joined.SendData(session, request.OpCode, matchData(request.Data)); err != nil {
		session.forgetMatch(request.MatchID)
		return err
	}

	return nil
}
