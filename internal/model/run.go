package model

import "time"

// RunStatus 报表生成记录状态
type RunStatus string

const (
	RunStatusProcessing RunStatus = "processing"
	RunStatusDone       RunStatus = "done"
	RunStatusError      RunStatus = "error"
)

// Run 一次报表生成的历史记录（仅用于追溯，不参与生成）
type Run struct {
	ID            string     `json:"id"`
	BehaviorFile  string     `json:"behaviorFile"`
	MiniTest1File string     `json:"miniTest1File"`
	MiniTest2File string     `json:"miniTest2File"`
	CommentsFile  string     `json:"commentsFile"`
	OutputPath    string     `json:"outputPath"`
	Status        RunStatus  `json:"status"`
	StudentCount  int        `json:"studentCount"`
	ErrorMessage  string     `json:"errorMessage,omitempty"`
	StartedAt     time.Time  `json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}
