package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Version        string `json:"version"`
	HistoryEnabled bool   `json:"historyEnabled"` // 是否记录生成历史
	RunCount       int    `json:"runCount"`       // 历史生成次数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Version:        h.opts.Version,
		HistoryEnabled: h.opts.Store != nil,
	}

	if h.opts.Store != nil {
		n, err := h.opts.Store.CountRuns()
		if err != nil {
			h.logger.Warn("failed to count runs", zap.Error(err))
		}
		resp.RunCount = n
	}

	c.JSON(http.StatusOK, resp)
}
