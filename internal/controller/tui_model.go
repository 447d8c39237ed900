package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/mapconv/internal/model"
)

const (
	defaultWidth = 80
	maxDiffLines = 12
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type fileRow struct {
	source  m.Source
	running bool
	report  *m.Report
}

// convertModel shows one row per mapping file while workers process them.
type convertModel struct {
	mode     StartMode
	spinner  spinner.Model
	width    int
	threads  int
	rows     []fileRow
	index    map[m.Path]int
	finished bool
}

func newConvertModel(mode StartMode) convertModel {
	return convertModel{
		mode:    mode,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		width:   defaultWidth,
		index:   make(map[m.Path]int),
	}
}

func (cm convertModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		return cm, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return cm, tea.Quit
		}

		return cm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd

	case planMsg:
		cm.threads = msg.threads
		cm.finished = false

		for _, source := range msg.sources {
			cm = cm.ensureRow(source)
		}

		return cm, nil

	case startedMsg:
		cm = cm.ensureRow(msg.source)
		row := &cm.rows[cm.index[msg.source.Origin]]
		row.running = true
		row.report = nil

		return cm, nil

	case completedMsg:
		cm = cm.ensureRow(msg.report.Source)
		report := msg.report
		row := &cm.rows[cm.index[report.Source.Origin]]
		row.running = false
		row.report = &report

		return cm, nil

	case summaryMsg:
		cm.finished = true

		for _, report := range msg.reports {
			cm = cm.ensureRow(report.Source)
			if row := &cm.rows[cm.index[report.Source.Origin]]; row.report == nil {
				r := report
				row.running = false
				row.report = &r
			}
		}

		if cm.mode == ModeWatch {
			return cm, nil
		}

		return cm, tea.Quit
	}

	return cm, nil
}

// ensureRow appends a row for source unless one exists.
func (cm convertModel) ensureRow(source m.Source) convertModel {
	if _, ok := cm.index[source.Origin]; ok {
		return cm
	}

	cm.index[source.Origin] = len(cm.rows)
	cm.rows = append(cm.rows, fileRow{source: source})

	return cm
}

func (cm convertModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("mapconv " + cm.mode.String()))
	sb.WriteString("  ")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d files • %d worker(s)", cm.completed(), len(cm.rows), cm.threads)))
	sb.WriteString("\n\n")

	pathWidth := cm.width - 40
	if pathWidth < 20 {
		pathWidth = 20
	}

	for _, row := range cm.rows {
		sb.WriteString(cm.renderRow(row, pathWidth))
		sb.WriteByte('\n')
	}

	if cm.finished {
		sb.WriteByte('\n')
		sb.WriteString(cm.renderFooter())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (cm convertModel) completed() int {
	count := 0

	for _, row := range cm.rows {
		if row.report != nil {
			count++
		}
	}

	return count
}

func (cm convertModel) renderRow(row fileRow, pathWidth int) string {
	path := pathStyle.Render(truncateToWidth(string(row.source.Origin), pathWidth))

	switch {
	case row.running:
		return fmt.Sprintf("%s %s", cm.spinner.View(), path)
	case row.report == nil:
		return fmt.Sprintf("%s %s", mutedStyle.Render("·"), path)
	}

	report := row.report
	line := fmt.Sprintf("%s %s %s", statusIcon(report.Status), path, statusDetail(*report))

	if report.Diff != "" {
		line += "\n" + renderDiff(report.Diff)
	}

	return line
}

func (cm convertModel) renderFooter() string {
	counts := make(map[m.Status]int)

	for _, row := range cm.rows {
		if row.report != nil {
			counts[row.report.Status]++
		}
	}

	parts := make([]string, 0, 5)

	for _, status := range []m.Status{m.Converted, m.Skipped, m.UpToDate, m.OutOfDate, m.Failed} {
		if counts[status] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", status, counts[status]))
		}
	}

	if len(parts) == 0 {
		return mutedStyle.Render("no mapping files processed")
	}

	return accentStyle.Render(strings.Join(parts, " • "))
}

func statusIcon(status m.Status) string {
	switch status {
	case m.Converted:
		return successStyle.Render("✓")
	case m.UpToDate:
		return mutedStyle.Render("✓")
	case m.Skipped:
		return mutedStyle.Render("↷")
	case m.OutOfDate:
		return warnStyle.Render("✗")
	case m.Failed:
		return errorStyle.Render("✗")
	}

	return "?"
}

func statusDetail(report m.Report) string {
	if report.Err != nil {
		return errorStyle.Render(report.Err.Error())
	}

	if report.Status == m.Skipped {
		return mutedStyle.Render("unchanged")
	}

	return mutedStyle.Render(fmt.Sprintf("%d classes • %d fields • %d methods",
		report.Stats.Classes, report.Stats.Fields, report.Stats.Methods))
}

func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	hidden := 0
	if len(lines) > maxDiffLines {
		hidden = len(lines) - maxDiffLines
		lines = lines[:maxDiffLines]
	}

	rendered := make([]string, 0, len(lines)+1)

	for _, l := range lines {
		style := mutedStyle
		if strings.HasPrefix(l, "+") {
			style = successStyle
		} else if strings.HasPrefix(l, "-") {
			style = errorStyle
		}

		rendered = append(rendered, "    "+style.Render(l))
	}

	if hidden > 0 {
		rendered = append(rendered, "    "+mutedStyle.Render(fmt.Sprintf("… %d more line(s)", hidden)))
	}

	return strings.Join(rendered, "\n")
}

func renderStats(path m.Path, stats m.Stats) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)

	body := []string{
		titleStyle.Render(string(path)),
		fmt.Sprintf("Classes            %s", accentStyle.Render(fmt.Sprintf("%d", stats.Classes))),
		fmt.Sprintf("Fields             %s", accentStyle.Render(fmt.Sprintf("%d", stats.Fields))),
		fmt.Sprintf("Methods            %s", accentStyle.Render(fmt.Sprintf("%d", stats.Methods))),
		fmt.Sprintf("External types     %s", accentStyle.Render(fmt.Sprintf("%d", stats.External))),
		fmt.Sprintf("Duplicate headers  %s", accentStyle.Render(fmt.Sprintf("%d", len(stats.Duplicates)))),
	}

	for _, dup := range stats.Duplicates {
		body = append(body, warnStyle.Render("duplicate: "+dup))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, body...)) + "\n"
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	// keep the tail: file names matter more than their directories
	runes := []rune(text)
	result := make([]rune, 0, width)
	currentWidth := lipgloss.Width(ellipsis)

	for i := len(runes) - 1; i >= 0; i-- {
		rWidth := lipgloss.Width(string(runes[i]))
		if currentWidth+rWidth > width {
			break
		}

		result = append([]rune{runes[i]}, result...)
		currentWidth += rWidth
	}

	return ellipsis + string(result)
}
