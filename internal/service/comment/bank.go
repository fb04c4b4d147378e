package comment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// Format 评语库文件格式
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath 按扩展名推断格式，未知扩展名按 JSON 处理
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load 读取评语库文件
func Load(path string) (model.CommentBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bank, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse comment bank %s: %w", filepath.Base(path), err)
	}
	return bank, nil
}

// Parse 解析评语库内容
func Parse(r io.Reader, format Format) (model.CommentBank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	bank := model.CommentBank{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &bank)
	default:
		err = json.Unmarshal(data, &bank)
	}
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// MissingEntry 评语库中缺失的 (技能, 分档)
type MissingEntry struct {
	Skill model.Skill
	Band  int
}

func (m MissingEntry) String() string {
	return fmt.Sprintf("%s/%d", m.Skill, m.Band)
}

// Validate 检查评语库是否覆盖所有技能的 1-10 档且候选不为空
func Validate(bank model.CommentBank, skills []model.Skill) []MissingEntry {
	missing := make([]MissingEntry, 0)
	for _, skill := range skills {
		bands := bank[string(skill)]
		for band := model.MinBand; band <= model.MaxBand; band++ {
			if len(bands[strconv.Itoa(band)]) == 0 {
				missing = append(missing, MissingEntry{Skill: skill, Band: band})
			}
		}
	}
	return missing
}

// ExtraSkills 返回评语库中不会被使用的技能名（通常是拼写错误）
func ExtraSkills(bank model.CommentBank, skills []model.Skill) []string {
	known := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		known[string(s)] = struct{}{}
	}
	extra := make([]string, 0)
	for name := range bank {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}
