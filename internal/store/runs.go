package store

import (
	"database/sql"
	"fmt"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// DefaultRunLimit 历史列表默认条数
const DefaultRunLimit = 20

// CreateRun 记录一次生成开始
func (s *Store) CreateRun(run *model.Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, behavior_file, mini_test_1_file, mini_test_2_file, comments_file,
			output_path, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.BehaviorFile, run.MiniTest1File, run.MiniTest2File, run.CommentsFile,
		run.OutputPath, string(run.Status), run.StartedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// FinishRun 更新生成结果
func (s *Store) FinishRun(run *model.Run) error {
	var completed any
	if run.CompletedAt != nil {
		completed = run.CompletedAt.UTC()
	}

	res, err := s.db.Exec(`
		UPDATE runs SET
			status = ?,
			student_count = ?,
			error_message = ?,
			completed_at = ?
		WHERE id = ?
	`, string(run.Status), run.StudentCount, run.ErrorMessage, completed, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run not found: %s", run.ID)
	}
	return nil
}

// GetRun 按 id 查询
func (s *Store) GetRun(id string) (*model.Run, error) {
	row := s.db.QueryRow(`
		SELECT id, behavior_file, mini_test_1_file, mini_test_2_file, comments_file,
			output_path, status, student_count, error_message, started_at, completed_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns 最近的生成记录，按开始时间倒序
func (s *Store) ListRuns(limit int) ([]*model.Run, error) {
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	rows, err := s.db.Query(`
		SELECT id, behavior_file, mini_test_1_file, mini_test_2_file, comments_file,
			output_path, status, student_count, error_message, started_at, completed_at
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*model.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CountRuns 历史记录总数
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner) (*model.Run, error) {
	var (
		run       model.Run
		status    string
		completed sql.NullTime
	)
	err := sc.Scan(
		&run.ID, &run.BehaviorFile, &run.MiniTest1File, &run.MiniTest2File, &run.CommentsFile,
		&run.OutputPath, &status, &run.StudentCount, &run.ErrorMessage, &run.StartedAt, &completed,
	)
	if err != nil {
		return nil, err
	}
	run.Status = model.RunStatus(status)
	if completed.Valid {
		t := completed.Time
		run.CompletedAt = &t
	}
	return &run, nil
}
