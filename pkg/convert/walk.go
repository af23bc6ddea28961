package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/report"
)

// Walk converts every immediate subdirectory of rootPath, in directory order.
// Entries that are not directories are ignored. The only error returned is the
// failure to list rootPath itself; every folder outcome is recorded in the summary.
func (c *Converter) Walk(rootPath string) (report.Summary, error) {
	summary := report.NewSummary(rootPath)

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return summary, fmt.Errorf("can't list root directory %s: %w", rootPath, err)
	}

	logger.Infof("Scanning %s for UiPath reports", rootPath)

	for _, entry := range entries {
		folderPath := filepath.Join(rootPath, entry.Name())
		if !isDirectory(folderPath, entry) {
			continue
		}

		folderLabel := entry.Name()
		if c.isExcluded(folderLabel) {
			logger.Debugf("Folder %s matches an exclude pattern, skipping", folderLabel)
			summary.Folders = append(summary.Folders, report.FolderReport{
				Label:  folderLabel,
				Path:   folderPath,
				Status: report.FolderStatusExcluded,
			})
			continue
		}

		summary.Folders = append(summary.Folders, c.processFolderSafely(folderPath, folderLabel))
	}

	return summary, nil
}

// processFolderSafely keeps the walk going when processing a folder panics.
func (c *Converter) processFolderSafely(folderPath, folderLabel string) (folderReport report.FolderReport) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected failure: %v", r)
			logger.Errorf("Error processing folder %s: %v", folderLabel, err)
			folderReport = report.FolderReport{Label: folderLabel, Path: folderPath}.WithError(err)
		}
	}()

	return c.ProcessFolder(folderPath, folderLabel)
}

// isDirectory follows symbolic links, so a linked folder is processed like a regular one.
func isDirectory(entryPath string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}

	info, err := os.Stat(entryPath)
	if err != nil {
		logger.Warnf("Can't resolve link %s: %v", entryPath, err)
		return false
	}

	return info.IsDir()
}
