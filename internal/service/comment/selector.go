package comment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

var (
	// ErrCommentNotFound 评语库中找不到对应技能/分档，或候选为空
	ErrCommentNotFound = errors.New("comment not found")
	// ErrInvalidScore 得分无法分档（NaN）
	ErrInvalidScore = errors.New("invalid score")
)

// Selector 按技能与得分随机挑选评语
type Selector struct {
	rng *rand.Rand
}

// NewSelector 创建选择器；rng 为 nil 时使用当前时间作为种子
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// NewSeededSelector 使用固定种子创建选择器；seed 为 0 时按当前时间播种
func NewSeededSelector(seed int64) *Selector {
	if seed == 0 {
		return NewSelector(nil)
	}
	return NewSelector(rand.New(rand.NewSource(seed)))
}

// Band 得分分档：截断取整（不四舍五入）后夹到 1-10
func Band(score float64) (int, error) {
	if math.IsNaN(score) {
		return 0, fmt.Errorf("%w: NaN", ErrInvalidScore)
	}
	if score >= model.MaxBand {
		return model.MaxBand, nil
	}
	if score < model.MinBand {
		return model.MinBand, nil
	}
	return int(score), nil
}

// Select 返回 skill 在 score 所属分档下的一条随机评语
func (s *Selector) Select(skill model.Skill, score float64, bank model.CommentBank) (string, error) {
	band, err := Band(score)
	if err != nil {
		return "", fmt.Errorf("%s: %w", skill, err)
	}

	bands, ok := bank[string(skill)]
	if !ok {
		return "", fmt.Errorf("%w: skill %q", ErrCommentNotFound, skill)
	}
	key := strconv.Itoa(band)
	candidates, ok := bands[key]
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("%w: skill %q band %s", ErrCommentNotFound, skill, key)
	}

	return candidates[s.rng.Intn(len(candidates))], nil
}
