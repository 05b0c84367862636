package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/singhsaravjit/portfolio-assistant/internal/chat"
	"github.com/singhsaravjit/portfolio-assistant/internal/common"
)

// maxUtteranceBytes bounds typed input; quick-action queries come from
// our own catalog and are not subject to it.
const maxUtteranceBytes = 2000

func (h *Handler) ListQuickActions(c *gin.Context) {
	common.OK(c, gin.H{"quick_actions": chat.QuickActions})
}

func (h *Handler) CreateChatSession(c *gin.Context) {
	s, err := h.Sessions.CreateSession(c.Request.Context())
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create session")
		return
	}
	common.OK(c, gin.H{
		"session_id": s.ID(),
		"state":      s.State(),
	})
}

func (h *Handler) GetChatSession(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("session_id"))
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}
	common.OK(c, gin.H{
		"session_id": s.ID(),
		"state":      s.State(),
	})
}

type sendMessageReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *Handler) SendChatMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if len(req.Message) > maxUtteranceBytes {
		common.Fail(c, http.StatusBadRequest, 10002, "message too long")
		return
	}

	if err := h.Sessions.Submit(c.Request.Context(), req.SessionID, req.Message); err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			common.Fail(c, http.StatusNotFound, 40401, "session not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	s, err := h.Sessions.Get(req.SessionID)
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}
	common.OK(c, gin.H{
		"session_id": req.SessionID,
		"state":      s.State(),
	})
}

type quickActionReq struct {
	Label string `json:"label" binding:"required"`
}

func (h *Handler) RunQuickAction(c *gin.Context) {
	var req quickActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	qa, ok := chat.QuickActionByLabel(req.Label)
	if !ok {
		common.Fail(c, http.StatusBadRequest, 10003, "unknown quick action")
		return
	}

	s, err := h.Sessions.Get(c.Param("session_id"))
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}

	s.RunQuickAction(qa.Query)
	common.OK(c, gin.H{
		"session_id": s.ID(),
		"query":      qa.Query,
	})
}

func (h *Handler) ToggleChatPanel(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("session_id"))
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}
	s.ToggleOpen()
	common.OK(c, gin.H{"state": s.State()})
}

func (h *Handler) CloseChatPanel(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("session_id"))
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}
	s.ClosePanel()
	common.OK(c, gin.H{"state": s.State()})
}

func (h *Handler) DeleteChatSession(c *gin.Context) {
	if err := h.Sessions.Remove(c.Request.Context(), c.Param("session_id")); err != nil {
		common.Fail(c, http.StatusNotFound, 40401, "session not found")
		return
	}
	common.OK(c, gin.H{"deleted": true})
}
