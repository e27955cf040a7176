package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
)

const shutdownTimeout = 5 * time.Second

type Authenticator interface {
	ParseToken(token string) (*entity.Player, error)
}

// ScoreSinkFunc returns where an identified player's wins are recorded.
type ScoreSinkFunc func(player *entity.Player) match.ScoreSubmitter

type Deps struct {
	Auth   Authenticator
	Engine match.MoveChooser
	Plays  match.PlayCounter
	Scores ScoreSinkFunc
}

// Server gives every connection its own match against the engine.
type Server struct {
	logger *slog.Logger
	deps   Deps
	opts   match.Options

	upgrader websocket.Upgrader
	handlers map[string]func(sess *session, msg *Message) error
}

func New(logger *slog.Logger, deps Deps, opts match.Options) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		deps:   deps,
		opts:   opts,

		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		handlers: make(map[string]func(*session, *Message) error),
	}

	server.handlers[actionStart] = server.handleStart
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionDifficulty] = server.handleDifficulty
	server.handlers[actionTallyReset] = server.handleTallyReset

	return server
}

// Start serves /ws on port until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	player, err := that.identify(req)
	if err != nil {
		log.Warn("rejecting connection", "error", err)
		http.Error(writer, "invalid auth token", http.StatusUnauthorized)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	sess := that.newSession(conn, player)
	sess.logger.Info("websocket connection established")

	go sess.writeLoop()
	that.readLoop(sess)

	sess.logger.Info("websocket connection closed")
}

// identify reads the token from the query or the auth cookie. No token means an anonymous player.
func (that *Server) identify(req *http.Request) (*entity.Player, error) {
	token := req.URL.Query().Get(queryParamToken)
	if token == "" {
		if cookie, err := req.Cookie(cookieAuthToken); err == nil {
			token = cookie.Value
		}
	}

	if token == "" || that.deps.Auth == nil {
		return &entity.Player{}, nil
	}

	player, err := that.deps.Auth.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return player, nil
}

func (that *Server) newSession(conn *websocket.Conn, player *entity.Player) *session {
	sess := &session{
		logger: that.logger.With("player", player.ID),
		conn:   conn,
		player: player,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}

	opts := that.opts
	opts.DisplayName = player.DisplayName

	deps := match.Collaborators{
		Plays:     that.deps.Plays,
		Presenter: sess,
	}

	// only identified players can own a score
	if !player.IsAnonymous() && that.deps.Scores != nil {
		deps.Scores = that.deps.Scores(player)
	}

	sess.controller = match.New(that.logger, that.deps.Engine, opts, deps)

	return sess
}

func (that *Server) readLoop(sess *session) {
	defer sess.close()

	sess.conn.SetReadLimit(maxMessageSize)
	_ = sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	sess.conn.SetPongHandler(func(string) error {
		return sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	sess.push(actionIdentity, sess.player)

	// the session starts with the connection; match:start only picks a tier
	sess.controller.Start()

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Error("error reading message", "error", err)
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			sess.pushError("", fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err))
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			sess.pushError(msg.Action, apperror.ErrUnknownAction)
			continue
		}

		if err = handler(sess, &msg); err != nil {
			sess.logger.Debug("error processing message", "action", msg.Action, "error", err)
			sess.pushError(msg.Action, err)
		}
	}
}
