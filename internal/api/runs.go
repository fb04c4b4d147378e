package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListRuns 生成历史
// GET /api/runs?limit=N
func (h *Handler) ListRuns(c *gin.Context) {
	if h.opts.Store == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false, "runs": []any{}})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	runs, err := h.opts.Store.ListRuns(limit)
	if err != nil {
		h.logger.Error("failed to list runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": true, "runs": runs})
}
