package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
	"github.com/DavidEgerton1/student-report-generator/internal/service/report"
)

// 上传表单字段
const (
	FieldBehavior  = "behavior"
	FieldMiniTest1 = "miniTest1"
	FieldMiniTest2 = "miniTest2"
	FieldComments  = "comments"
)

// ReportFileName 下载时的默认文件名
const ReportFileName = "Student_Reports.xlsx"

// ReportResponse 生成结果
type ReportResponse struct {
	RunID       string            `json:"runId"`
	Students    int               `json:"students"`
	Skipped     int               `json:"skipped"`
	Rows        []model.ReportRow `json:"rows"`
	DownloadURL string            `json:"downloadUrl"`
}

type uploadField struct {
	field string
	role  report.Role
}

var uploadFields = []uploadField{
	{FieldBehavior, report.RoleBehavior},
	{FieldMiniTest1, report.RoleMiniTest1},
	{FieldMiniTest2, report.RoleMiniTest2},
	{FieldComments, report.RoleComments},
}

// GenerateReport 上传四个输入文件并生成报表
// POST /api/report
func (h *Handler) GenerateReport(c *gin.Context) {
	dir := h.uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": report.FailureMessage(err)})
		return
	}

	paths := make(map[string]string, len(uploadFields))
	defer func() {
		for _, p := range paths {
			_ = os.Remove(p)
		}
	}()

	for _, f := range uploadFields {
		fh, err := c.FormFile(f.field)
		if err != nil {
			accessErr := &report.FileAccessError{Role: f.role, Err: errors.New("no file selected")}
			c.JSON(http.StatusBadRequest, gin.H{"error": report.FailureMessage(accessErr)})
			return
		}
		path, err := h.saveUpload(c, fh, dir)
		if err != nil {
			h.logger.Error("failed to save upload", zap.String("field", f.field), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": report.FailureMessage(err)})
			return
		}
		paths[f.field] = path
	}

	exportDir := h.exportDir()
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": report.FailureMessage(err)})
		return
	}
	outputPath := filepath.Join(exportDir, fmt.Sprintf("report_%s.xlsx", uuid.New().String()))
	gen := report.NewGenerator(h.opts.Settings, comment.NewSeededSelector(h.opts.Seed), h.logger)
	if h.opts.Store != nil {
		gen.SetRecorder(h.opts.Store)
	}

	result, err := gen.Generate(report.Options{
		BehaviorPath:  paths[FieldBehavior],
		MiniTest1Path: paths[FieldMiniTest1],
		MiniTest2Path: paths[FieldMiniTest2],
		CommentsPath:  paths[FieldComments],
		OutputPath:    outputPath,
	}, func(e report.ProgressEvent) {
		h.logger.Debug("report progress", zap.Int("percent", e.Percent), zap.String("stage", e.Stage))
	})
	if err != nil {
		_ = os.Remove(outputPath)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": report.FailureMessage(err)})
		return
	}

	token := h.downloads.put(outputPath, result.RunID, downloadTTL)
	prefix := strings.TrimSuffix(c.FullPath(), "/report")

	c.JSON(http.StatusOK, ReportResponse{
		RunID:       result.RunID,
		Students:    len(result.Rows),
		Skipped:     result.Skipped,
		Rows:        result.Rows,
		DownloadURL: fmt.Sprintf("%s/report/download/%s", prefix, token),
	})
}

// DownloadReport 下载生成的报表（一次性）
// GET /api/report/download/:token
func (h *Handler) DownloadReport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	item, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}
	defer os.Remove(item.filePath)

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report file not found"})
		return
	}

	c.FileAttachment(item.filePath, ReportFileName)
}

// saveUpload 以随机文件名保存上传文件，保留扩展名（评语库按扩展名识别格式）
func (h *Handler) saveUpload(c *gin.Context, fh *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(dir, "upload_"+uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", fh.Filename, err)
	}
	return path, nil
}

func (h *Handler) uploadDir() string {
	if h.opts.UploadDir != "" {
		return h.opts.UploadDir
	}
	return filepath.Join(os.TempDir(), "reportgen")
}

func (h *Handler) exportDir() string {
	if h.opts.ExportDir != "" {
		return h.opts.ExportDir
	}
	return h.uploadDir()
}
