package model

// SheetRole 输入工作表的角色（用于识别用户是否选错文件）
type SheetRole string

const (
	SheetRoleUnknown  SheetRole = "unknown"
	SheetRoleBehavior SheetRole = "behavior"  // 行为表
	SheetRoleMiniTest SheetRole = "mini_test" // 小测表
)

// SheetRecognition 单个 sheet 的识别结果
type SheetRecognition struct {
	SheetName     string    `json:"sheetName"`
	Role          SheetRole `json:"role"`
	Score         float64   `json:"score"`
	MissingFields []string  `json:"missingFields"`
}

// SheetRow 输入表中的一行：学生编号 + 其余列的原始值
// Values 与 Sheet.Columns 一一对应，元素为 nil / float64 / bool / string / time.Time（日期格式）
type SheetRow struct {
	RowNo       int
	StudentCode string
	Values      []any
}

// Sheet 从工作簿读取的一张表（不含 student_code 列）
type Sheet struct {
	Name    string
	Columns []string
	Rows    []SheetRow
}

// ColumnIndex 返回列下标，不存在时返回 -1
func (s *Sheet) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ScoreRow 规范化后的一行，Scores 与 ScoreSheet.Columns 一一对应
type ScoreRow struct {
	RowNo       int
	StudentCode string
	Scores      []int
}

// ScoreSheet 规范化后的得分表，所有单元格均为整数
type ScoreSheet struct {
	Name    string
	Columns []string
	Rows    []ScoreRow
}

// ColumnIndex 返回列下标，不存在时返回 -1
func (s *ScoreSheet) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Sheet 转回原始表形式（整数按 float64 保存），便于再次规范化
func (s *ScoreSheet) Sheet() *Sheet {
	out := &Sheet{
		Name:    s.Name,
		Columns: append([]string(nil), s.Columns...),
		Rows:    make([]SheetRow, 0, len(s.Rows)),
	}
	for _, r := range s.Rows {
		values := make([]any, len(r.Scores))
		for i, v := range r.Scores {
			values[i] = float64(v)
		}
		out.Rows = append(out.Rows, SheetRow{
			RowNo:       r.RowNo,
			StudentCode: r.StudentCode,
			Values:      values,
		})
	}
	return out
}
