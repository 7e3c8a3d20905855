package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vit0-9/cors_inspector/models"
	"github.com/vit0-9/cors_inspector/pkg/utils"
)

// InspectHandlers serves the header inspection page.
type InspectHandlers struct {
	prober   utils.Prober
	template string
}

// NewInspectHandlers wires the handlers to a prober and a page template name.
func NewInspectHandlers(prober utils.Prober, templateName string) *InspectHandlers {
	return &InspectHandlers{
		prober:   prober,
		template: templateName,
	}
}

// InspectHandler godoc
// @Summary      Inspect the response headers of a URL
// @Description  Sends one HEAD request to the given URL and renders its headers split into CORS and other headers, with a media preview for images, video and audio.
// @Tags         Inspection
// @Produce      html
// @Param        url query string false "URL to probe. Omit for the empty form."
// @Success      200 {string} string "Inspection page"
// @Failure      500 {string} string "Probe failed"
// @Router       / [get]
func (h *InspectHandlers) InspectHandler(c *gin.Context) {
	targetURL := strings.TrimSpace(c.Query("url"))
	if targetURL == "" {
		c.HTML(http.StatusOK, h.template, models.InspectionPage{})
		return
	}

	// Cancelled with the inbound request so a disconnected client stops the probe.
	res, err := h.prober.ProbeHeaders(c.Request.Context(), utils.NewProbeRequest(targetURL))
	if err != nil {
		logrus.WithError(err).WithField("target", targetURL).Warn("Header probe failed")
		c.String(http.StatusInternalServerError, "Error fetching headers: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, h.template, models.NewInspectionPage(targetURL, res))
}

// NotFoundHandler answers every unmatched route.
func (h *InspectHandlers) NotFoundHandler(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}
