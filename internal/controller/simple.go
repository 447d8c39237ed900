package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	m "github.com/mouse-blink/mapconv/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
	mu   sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayPlan prints how many files will be processed.
func (s *SimpleUI) DisplayPlan(sources []m.Source, threads int) {
	s.printf("%s: %d mapping file(s) with %d worker(s)\n", s.mode, len(sources), threads)
}

// DisplayStarted is silent in plain mode; completion lines carry the path.
func (s *SimpleUI) DisplayStarted(_ m.Source) {}

// DisplayCompleted prints one line per finished file, plus the diff in
// check mode.
func (s *SimpleUI) DisplayCompleted(report m.Report) {
	switch {
	case report.Err != nil:
		s.printf("%-11s %s: %v\n", report.Status, report.Source.Origin, report.Err)
	case report.Status == m.Converted:
		s.printf("%-11s %s -> %s\n", report.Status, report.Source.Origin, report.Source.Output)
	default:
		s.printf("%-11s %s\n", report.Status, report.Source.Origin)
	}

	if report.Diff != "" {
		s.printf("%s", indent(report.Diff))
	}
}

// DisplaySummary renders a table of all reports.
func (s *SimpleUI) DisplaySummary(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No mapping files found\n")
		return nil
	}

	sorted := append([]m.Report(nil), reports...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source.Origin < sorted[j].Source.Origin })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Classes", "Fields", "Methods", "External"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var total m.Stats

	failed := 0

	for _, report := range sorted {
		if report.Status == m.Failed {
			failed++
		}

		table.Append([]string{
			string(report.Source.Origin),
			string(report.Status),
			fmt.Sprintf("%d", report.Stats.Classes),
			fmt.Sprintf("%d", report.Stats.Fields),
			fmt.Sprintf("%d", report.Stats.Methods),
			fmt.Sprintf("%d", report.Stats.External),
		})

		total.Classes += report.Stats.Classes
		total.Fields += report.Stats.Fields
		total.Methods += report.Stats.Methods
		total.External += report.Stats.External
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("Failed %d", failed),
		fmt.Sprintf("%d", total.Classes),
		fmt.Sprintf("%d", total.Fields),
		fmt.Sprintf("%d", total.Methods),
		fmt.Sprintf("%d", total.External),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayStats prints the statistics of a single mapping file.
func (s *SimpleUI) DisplayStats(path m.Path, stats m.Stats) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Classes", fmt.Sprintf("%d", stats.Classes)},
		{"Fields", fmt.Sprintf("%d", stats.Fields)},
		{"Methods", fmt.Sprintf("%d", stats.Methods)},
		{"External types", fmt.Sprintf("%d", stats.External)},
		{"Duplicate headers", fmt.Sprintf("%d", len(stats.Duplicates))},
	})
	table.Render()

	s.printf("%s\n%s", path, tableBuffer.String())

	for _, dup := range stats.Duplicates {
		s.printf("duplicate class header: %s\n", dup)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func indent(text string) string {
	lines := strings.SplitAfter(text, "\n")

	var sb strings.Builder

	for _, l := range lines {
		if l == "" {
			continue
		}

		sb.WriteString("    ")
		sb.WriteString(l)
	}

	return sb.String()
}
