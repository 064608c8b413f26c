package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestToExcel(t *testing.T) {
	records := []Record{
		{
			FileName:    "talk.mp4",
			Transcript:  "hello world",
			Summary:     "a greeting",
			ProcessedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			FileName:    "broken.mov",
			ErrorStage:  "transcription",
			Error:       "quota exceeded",
			ProcessedAt: time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
		},
	}

	outputPath := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, ToExcel(records, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Summaries", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "File", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "talk.mp4", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "hello world", sheet.Rows[1].Cells[2].Value)
	assert.Equal(t, "a greeting", sheet.Rows[1].Cells[3].Value)
	assert.Empty(t, sheet.Rows[1].Cells[4].Value)

	assert.Equal(t, "broken.mov", sheet.Rows[2].Cells[0].Value)
	assert.Equal(t, "transcription", sheet.Rows[2].Cells[4].Value)
	assert.Equal(t, "quota exceeded", sheet.Rows[2].Cells[5].Value)
}

func TestToExcel_EmptyRecords(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1, "header only")
}
