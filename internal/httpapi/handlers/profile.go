package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/profile"
)

// GetProfileSection serves one section of the current snapshot
// verbatim, giving the site frontend its data endpoints.
func (h *Handler) GetProfileSection(c *gin.Context) {
	name := c.Param("section")
	if !profile.ValidSection(name) {
		common.Fail(c, http.StatusNotFound, 40402, "unknown section")
		return
	}

	raw, ok, err := profile.EncodeSection(h.Profiles.Snapshot(), name)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to encode section")
		return
	}
	if !ok {
		common.Fail(c, http.StatusNotFound, 40403, "section not loaded")
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
