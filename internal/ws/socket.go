package ws

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/kiliankoe/champroll/internal/game"
	"github.com/rs/zerolog/log"
)

const stateEvent = "randomizer:state"

type ConnCtx struct {
	Code string
}

type Server struct {
	Manager *game.Manager
	io      *socketio.Server
}

func New(m *game.Manager) *Server {
	return &Server{Manager: m}
}

type configPayload struct {
	TeamSize           *int  `json:"teamSize"`
	ChampsPerPlayer    *int  `json:"champsPerPlayer"`
	ExcludeUnkillables *bool `json:"excludeUnkillables"`
}

type namePayload struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

type slotPayload struct {
	Slot int `json:"slot"`
}

// Mount attaches the Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)
	srv.io = io

	io.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(&ConnCtx{})
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	// randomizer:create opens a fresh session for this connection
	io.OnEvent("/", "randomizer:create", func(s socketio.Conn) map[string]any {
		code, st, err := srv.Manager.CreateSession(context.Background())
		if err != nil {
			return srv.err(s, "", err)
		}
		srv.attach(s, code)
		log.Info().Str("sid", s.ID()).Str("code", code).Msg("randomizer:create")
		s.Emit(stateEvent, st.View())
		return map[string]any{"sessionCode": code}
	})

	// randomizer:resume reattaches after a reconnect or from a shared link
	io.OnEvent("/", "randomizer:resume", func(s socketio.Conn, payload struct {
		SessionCode string `json:"sessionCode"`
	}) map[string]any {
		st, err := srv.Manager.Get(context.Background(), payload.SessionCode)
		if err != nil {
			return srv.err(s, payload.SessionCode, err)
		}
		srv.attach(s, payload.SessionCode)
		log.Info().Str("sid", s.ID()).Str("code", payload.SessionCode).Msg("randomizer:resume")
		s.Emit(stateEvent, st.View())
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "randomizer:config", func(s socketio.Conn, p configPayload) map[string]any {
		return srv.apply(s, game.Action{
			Type:               game.ActionConfigure,
			TeamSize:           p.TeamSize,
			ChampsPerPlayer:    p.ChampsPerPlayer,
			ExcludeUnkillables: p.ExcludeUnkillables,
		})
	})

	io.OnEvent("/", "randomizer:name", func(s socketio.Conn, p namePayload) map[string]any {
		return srv.apply(s, game.Action{Type: game.ActionSetName, Slot: p.Slot, Name: p.Name})
	})

	io.OnEvent("/", "randomizer:generate", func(s socketio.Conn) map[string]any {
		return srv.apply(s, game.Action{Type: game.ActionGenerate})
	})

	io.OnEvent("/", "randomizer:reroll", func(s socketio.Conn, p slotPayload) map[string]any {
		return srv.apply(s, game.Action{Type: game.ActionReroll, Slot: p.Slot})
	})

	io.OnEvent("/", "randomizer:reset", func(s socketio.Conn) map[string]any {
		return srv.apply(s, game.Action{Type: game.ActionReset})
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go io.Serve()

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

var errNoSession = errors.New("no session attached to this connection")

// apply runs a on the connection's session and pushes the new view to everyone watching it.
func (srv *Server) apply(s socketio.Conn, a game.Action) map[string]any {
	code := sessionCode(s)
	if code == "" {
		s.Emit("error", map[string]any{"code": "no_session", "message": errNoSession.Error()})
		return map[string]any{"error": errNoSession.Error()}
	}
	st, err := srv.Manager.Dispatch(context.Background(), code, a)
	if err != nil {
		return srv.err(s, code, err)
	}
	log.Info().Str("code", code).Str("action", string(a.Type)).Int("slot", a.Slot).Msg("randomizer:" + string(a.Type))
	srv.io.BroadcastToRoom("/", code, stateEvent, st.View())
	return map[string]any{"ok": true}
}

func (srv *Server) attach(s socketio.Conn, code string) {
	if prev := sessionCode(s); prev != "" && prev != code {
		s.Leave(prev)
	}
	s.SetContext(&ConnCtx{Code: code})
	s.Join(code)
}

func (srv *Server) err(s socketio.Conn, code string, err error) map[string]any {
	errCode := game.Code(err)
	if errCode == "internal" {
		log.Error().Err(err).Str("code", code).Msg("socket action failed")
	} else {
		log.Warn().Err(err).Str("code", code).Msg("socket action rejected")
	}
	payload := map[string]any{"code": errCode, "message": game.Message(err)}
	var missing *game.MissingNamesError
	if errors.As(err, &missing) {
		payload["slots"] = missing.Slots
	}
	s.Emit("error", payload)
	return map[string]any{"error": game.Message(err)}
}

func sessionCode(s socketio.Conn) string {
	if ctx, ok := s.Context().(*ConnCtx); ok {
		return ctx.Code
	}
	return ""
}
