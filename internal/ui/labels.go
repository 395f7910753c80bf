package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tododemo/internal/model"
)

// Labels holds every user-visible string so a view can swap languages
// without touching layout.
type Labels struct {
	Title       string
	Placeholder string
	AddHint     string

	All, Active, Completed string

	Total, Done, Pending string

	EmptyAll, EmptyActive, EmptyCompleted string

	Footer string
	Help   string // markdown
}

// FilterName is the tab label for f.
func (l Labels) FilterName(f model.Filter) string {
	switch f {
	case model.Active:
		return l.Active
	case model.Completed:
		return l.Completed
	default:
		return l.All
	}
}

// Empty is the message shown when f hides every item.
func (l Labels) Empty(f model.Filter) string {
	switch f {
	case model.Active:
		return l.EmptyActive
	case model.Completed:
		return l.EmptyCompleted
	default:
		return l.EmptyAll
	}
}

// Summary renders "Total: n | Completed: c | Pending: p".
func (l Labels) Summary(c model.Counts) string {
	return fmt.Sprintf("%s: %d | %s: %d | %s: %d",
		l.Total, c.Total, l.Done, c.Completed, l.Pending, c.Pending)
}

var english = Labels{
	Title:          "Todo Demo",
	Placeholder:    "Add a new task...",
	AddHint:        "enter to add",
	All:            "All",
	Active:         "Active",
	Completed:      "Completed",
	Total:          "Total",
	Done:           "Completed",
	Pending:        "Pending",
	EmptyAll:       "No tasks yet",
	EmptyActive:    "No active tasks",
	EmptyCompleted: "No completed tasks",
	Footer:         "Built with Go + Bubble Tea",
	Help: `# Keys

| Key | Action |
|-----|--------|
| tab | switch between the entry field and the list |
| enter | add the typed task |
| ↑/k ↓/j | move |
| space, x | toggle completed |
| d, delete | delete |
| 1 2 3 | show all / active / completed |
| ←/h →/l | previous / next filter |
| ? | close this help |
| q, esc | quit |
`,
}

var chinese = Labels{
	Title:          "Todo Demo",
	Placeholder:    "添加新任务...",
	AddHint:        "回车添加",
	All:            "全部",
	Active:         "待办",
	Completed:      "已完成",
	Total:          "总计",
	Done:           "已完成",
	Pending:        "待办",
	EmptyAll:       "暂无任务",
	EmptyActive:    "暂无待办任务",
	EmptyCompleted: "暂无已完成任务",
	Footer:         "使用 Go + Bubble Tea 构建",
	Help: `# 按键

| 按键 | 操作 |
|-----|------|
| tab | 在输入框和列表之间切换 |
| enter | 添加输入的任务 |
| ↑/k ↓/j | 移动 |
| space, x | 切换完成状态 |
| d, delete | 删除 |
| 1 2 3 | 全部 / 待办 / 已完成 |
| ←/h →/l | 上一个 / 下一个过滤器 |
| ? | 关闭帮助 |
| q, esc | 退出 |
`,
}

// LabelsFor returns the label set for lang; unknown languages get English.
func LabelsFor(lang string) Labels {
	switch strings.ToLower(lang) {
	case "zh":
		return chinese
	default:
		return english
	}
}
