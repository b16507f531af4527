// Package export renders task lists as XLSX workbooks.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

const sheet = "Tasks"

func (e *XLSXExporter) ExportXLSX(project *domain.Project, tasks []domain.Task) ([]byte, error) {
	f := excelize.NewFile()
	_ = f.SetDocProps(&excelize.DocProperties{Title: project.Name + " tasks"})
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{
		"Title",
		"Status",
		"Priority",
		"Estimated Hours",
		"Skills",
		"Due Date",
		"Score",
		"Score Reason",
		"Description",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, task := range tasks {
		row := rowIdx + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, task.Title)
		write(2, string(task.Status))
		write(3, string(task.Priority))
		if task.EstimatedHours != nil {
			write(4, *task.EstimatedHours)
		}
		write(5, strings.Join(task.SkillsRequired, ", "))
		if task.DueDate != nil {
			write(6, task.DueDate.Format("2006-01-02"))
		}
		if task.AIScore != nil {
			write(7, *task.AIScore)
		}
		write(8, task.AIScoreReason)
		write(9, truncate(task.Description, 140))
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 28)
	_ = f.SetColWidth(sheet, "F", "H", 14)
	_ = f.SetColWidth(sheet, "I", "I", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
