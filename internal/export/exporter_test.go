package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

var exportedAt = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func testMeeting(id int64, title string) fathom.Meeting {
	return fathom.Meeting{
		Title:              title,
		RecordingID:        id,
		RecordingStartTime: time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC),
		RecordingEndTime:   time.Date(2024, 12, 1, 15, 30, 0, 0, time.UTC),
	}
}

func TestNewExporterRequiresDir(t *testing.T) {
	_, err := NewExporter("")
	assert.Error(t, err)
}

func TestWriteMeetingCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	exporter, err := NewExporter(dir)
	require.NoError(t, err)

	path, err := exporter.WriteMeeting(testMeeting(1, "Weekly Sync"), exportedAt)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Weekly_Sync_2024-12-01.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Weekly Sync")
	assert.Contains(t, string(content), "_Exported 2025-01-15T09:30:00Z_")
}

func TestWriteMeetingIsIdempotentOnDirectory(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir)
	require.NoError(t, err)

	_, err = exporter.WriteMeeting(testMeeting(1, "One"), exportedAt)
	require.NoError(t, err)
	_, err = exporter.WriteMeeting(testMeeting(2, "Two"), exportedAt)
	require.NoError(t, err)
}

func TestExportAllWritesEveryMeeting(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir)
	require.NoError(t, err)

	meetings := []fathom.Meeting{
		testMeeting(1, "First"),
		testMeeting(2, "Second"),
		testMeeting(3, "Third"),
	}

	written, err := exporter.ExportAll(context.Background(), meetings, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExportAllLeavesEarlierFilesOnFailure(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	meetings := []fathom.Meeting{testMeeting(1, "First"), testMeeting(2, "Second")}

	// Cancel after the first write by wrapping the loop boundary: write one
	// meeting up front, then cancel and export the rest.
	_, err = exporter.WriteMeeting(meetings[0], exportedAt)
	require.NoError(t, err)
	cancel()

	written, err := exporter.ExportAll(ctx, meetings[1:], exportedAt)
	assert.Error(t, err)
	assert.Equal(t, 0, written)

	// The file written before the failure is still there.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}
