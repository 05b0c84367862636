package handlers

import (
	"github.com/singhsaravjit/portfolio-assistant/internal/chat"
	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/config"
	"github.com/singhsaravjit/portfolio-assistant/internal/profile"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Cfg      config.Config
	Sessions *chat.Manager
	Profiles *profile.Store

	// Repo is set when the profile source is the database; admin
	// updates are unavailable without it.
	Repo  *profile.Repo
	Cache profile.SectionCache
}

func NewHandler(cfg config.Config, sessions *chat.Manager, profiles *profile.Store, repo *profile.Repo, cache profile.SectionCache) *Handler {
	return &Handler{
		Cfg:      cfg,
		Sessions: sessions,
		Profiles: profiles,
		Repo:     repo,
		Cache:    cache,
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
