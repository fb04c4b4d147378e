package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/report"
)

// RunStore 生成历史存储（可选）
type RunStore interface {
	report.RunRecorder
	ListRuns(limit int) ([]*model.Run, error)
	CountRuns() (int, error)
}

// Options Handler 构造参数
type Options struct {
	Version   string
	Settings  report.Settings
	Seed      int64    // 0 表示每次请求按时间随机
	UploadDir string   // 上传文件的临时目录
	ExportDir string   // 生成结果目录，空则与 UploadDir 相同
	Store     RunStore // 为 nil 时不记录历史
	Logger    *zap.Logger
}

// Handler 报表 API 处理器
type Handler struct {
	opts      Options
	downloads *downloadStore
	logger    *zap.Logger
}

// NewHandler 创建 API 处理器
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		opts:      opts,
		downloads: newDownloadStore(),
		logger:    logger,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 生成报表
	router.POST("/report", h.GenerateReport)
	router.GET("/report/download/:token", h.DownloadReport)

	// 生成历史
	router.GET("/runs", h.ListRuns)
}
