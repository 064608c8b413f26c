// Package export writes batch processing results to an Excel workbook.
package export

import (
	"time"

	"github.com/tealeg/xlsx"

	apperrors "vidsum/internal/app/errors"
)

// Record is one processed file's outcome in a batch run.
type Record struct {
	FileName    string
	Transcript  string
	Summary     string
	ErrorStage  string
	Error       string
	ProcessedAt time.Time
}

// ToExcel writes the records into a single-sheet workbook at
// outputFilePath.
func ToExcel(records []Record, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Summaries")
	if err != nil {
		return apperrors.Wrap(err, "add worksheet")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Processed At"
	headerRow.AddCell().Value = "Transcript"
	headerRow.AddCell().Value = "Summary"
	headerRow.AddCell().Value = "Failed Stage"
	headerRow.AddCell().Value = "Error"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = r.FileName
		row.AddCell().Value = r.ProcessedAt.Format(time.RFC3339)
		row.AddCell().Value = r.Transcript
		row.AddCell().Value = r.Summary
		row.AddCell().Value = r.ErrorStage
		row.AddCell().Value = r.Error
	}

	if err := file.Save(outputFilePath); err != nil {
		return apperrors.Wrapf(err, "save workbook %s", outputFilePath)
	}
	return nil
}
