package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/champroll/internal/champions"
	"github.com/kiliankoe/champroll/internal/game"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

type Handler struct {
	Manager   *game.Manager
	PublicURL string
}

type configReq struct {
	TeamSize           *int  `json:"teamSize"`
	ChampsPerPlayer    *int  `json:"champsPerPlayer"`
	ExcludeUnkillables *bool `json:"excludeUnkillables"`
}

type nameReq struct {
	Name string `json:"name"`
}

func (h *Handler) createSession(c *gin.Context) {
	code, s, err := h.Manager.CreateSession(c.Request.Context())
	if err != nil {
		h.fail(c, "", err)
		return
	}
	log.Info().Str("code", code).Msg("session created")
	c.JSON(http.StatusCreated, gin.H{"sessionCode": code, "view": s.View()})
}

func (h *Handler) getSession(c *gin.Context) {
	s, err := h.Manager.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, c.Param("code"), err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}

func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.Manager.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.fail(c, c.Param("code"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) configure(c *gin.Context) {
	var req configReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid config"})
		return
	}
	h.dispatch(c, game.Action{
		Type:               game.ActionConfigure,
		TeamSize:           req.TeamSize,
		ChampsPerPlayer:    req.ChampsPerPlayer,
		ExcludeUnkillables: req.ExcludeUnkillables,
	})
}

func (h *Handler) setName(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid name"})
		return
	}
	h.dispatch(c, game.Action{Type: game.ActionSetName, Slot: slot, Name: req.Name})
}

func (h *Handler) generate(c *gin.Context) {
	h.dispatch(c, game.Action{Type: game.ActionGenerate})
}

func (h *Handler) reroll(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	h.dispatch(c, game.Action{Type: game.ActionReroll, Slot: slot})
}

func (h *Handler) reset(c *gin.Context) {
	h.dispatch(c, game.Action{Type: game.ActionReset})
}

// qr serves a PNG that opens the session on another device.
func (h *Handler) qr(c *gin.Context) {
	code := c.Param("code")
	if _, err := h.Manager.Get(c.Request.Context(), code); err != nil {
		h.fail(c, code, err)
		return
	}
	url := fmt.Sprintf("%s/?session=%s", strings.TrimSuffix(h.PublicURL, "/"), code)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		h.fail(c, code, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) listChampions(c *gin.Context) {
	exclude, _ := strconv.ParseBool(c.Query("excludeUnkillables"))
	c.JSON(http.StatusOK, gin.H{
		"champions":   champions.Eligible(exclude),
		"unkillables": champions.Unkillables(),
	})
}

func (h *Handler) dispatch(c *gin.Context, a game.Action) {
	code := c.Param("code")
	s, err := h.Manager.Dispatch(c.Request.Context(), code, a)
	if err != nil {
		h.fail(c, code, err)
		return
	}
	log.Info().Str("code", code).Str("action", string(a.Type)).Int("slot", a.Slot).Msg("action applied")
	c.JSON(http.StatusOK, s.View())
}

func (h *Handler) fail(c *gin.Context, code string, err error) {
	status, errCode := ErrorCode(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", code).Msg("action rejected")
	}
	body := gin.H{"error": errCode, "message": game.Message(err)}
	var missing *game.MissingNamesError
	if errors.As(err, &missing) {
		body["slots"] = missing.Slots
	}
	c.JSON(status, body)
}

// ErrorCode maps domain errors to an HTTP status and a stable error code.
func ErrorCode(err error) (int, string) {
	code := game.Code(err)
	switch code {
	case "session_not_found":
		return http.StatusNotFound, code
	case "missing_names":
		return http.StatusUnprocessableEntity, code
	case "reroll_unavailable":
		return http.StatusConflict, code
	case "invalid_slot", "bad_request":
		return http.StatusBadRequest, code
	default:
		return http.StatusInternalServerError, code
	}
}

func slotParam(c *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot", "message": "slot must be a number"})
		return 0, false
	}
	return slot, true
}
