package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudioVitaBR/studio-manager/internal/cache"
	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/httpresp"
	ucDashboard "github.com/StudioVitaBR/studio-manager/internal/usecase/dashboard"
)

type DashboardHandler struct {
	getStats *ucDashboard.GetStats
	stats    *cache.StatsCache
}

func NewDashboardHandler(
	getStats *ucDashboard.GetStats,
	stats *cache.StatsCache,
) *DashboardHandler {
	return &DashboardHandler{
		getStats: getStats,
		stats:    stats,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	// A geração é lida antes de computar: o Set abaixo grava sob essa
	// geração, então um commit concorrente (que a incrementa) nunca deixa
	// um snapshot velho na chave corrente.
	payload, gen, ok := h.stats.Get(ctx)
	if ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	stats, err := h.getStats.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar o dashboard.")
		return
	}

	if payload, err := json.Marshal(stats); err == nil {
		h.stats.Set(ctx, gen, payload)
	}

	httpresp.OK(c, stats)
}
