package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/singhsaravjit/portfolio-assistant/internal/auth"
	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/observability"
	"github.com/singhsaravjit/portfolio-assistant/internal/profile"
)

// sectionInvalidator is implemented by caches that can drop a stale
// section (redisstore.Store).
type sectionInvalidator interface {
	InvalidateSection(ctx context.Context, name string) error
}

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin exchanges the operator password for a JWT.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if h.Cfg.AdminPasswordHash == "" {
		common.Fail(c, http.StatusForbidden, 40301, "admin access not configured")
		return
	}
	if !auth.CheckPassword(h.Cfg.AdminPasswordHash, req.Password) {
		common.Fail(c, http.StatusUnauthorized, 40103, "invalid credentials")
		return
	}

	token, err := auth.SignJWT("admin", h.Cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to sign token")
		return
	}
	common.OK(c, gin.H{"token": token})
}

// UpdateProfileSection validates and stores a replacement document for
// one section, then refreshes the live snapshot.
func (h *Handler) UpdateProfileSection(c *gin.Context) {
	name := c.Param("section")
	if !profile.ValidSection(name) {
		common.Fail(c, http.StatusNotFound, 40402, "unknown section")
		return
	}
	if h.Repo == nil {
		common.Fail(c, http.StatusConflict, 40901, "profile source is not the database")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "unreadable body")
		return
	}
	// Shape check: must decode into the section's record type.
	var probe profile.Snapshot
	if err := profile.DecodeSection(&probe, name, raw); err != nil {
		common.Fail(c, http.StatusBadRequest, 10004, "document does not match section shape")
		return
	}
	// Store a normalized copy rather than the raw bytes.
	normalized, ok, err := profile.EncodeSection(probe, name)
	if err != nil || !ok {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to encode section")
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.UpsertSection(ctx, name, normalized); err != nil {
		observability.LoggerFromContext(ctx).Error("section upsert failed", "section", name, "error", err)
		common.Fail(c, http.StatusInternalServerError, 50004, "failed to store section")
		return
	}

	if inv, ok := h.Cache.(sectionInvalidator); ok {
		_ = inv.InvalidateSection(ctx, name)
	}

	if err := h.Profiles.Refresh(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn("snapshot refresh after update failed", "error", err)
	}

	common.OK(c, gin.H{"section": name, "bytes": len(normalized)})
}
