package publish

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/report"
	"github.com/mholt/archiver/v3"
)

// CreateArchive bundles every report written during the run into a tar.gz archive.
// Each report is stored as "<folder label>/<report file name>".
func CreateArchive(archivePath string, summary report.Summary) error {
	logger.Infof("Creating JUnit reports archive %s", archivePath)

	stagingDir, err := os.MkdirTemp("", "uireport-archive-")
	if err != nil {
		return fmt.Errorf("can't create staging directory: %w", err)
	}

	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			logger.Errorf("can't remove staging directory %s: %v", stagingDir, err)
		}
	}()

	var filesToArchive []string
	for _, folder := range summary.Folders {
		if folder.OutputPath == "" {
			continue
		}

		folderDir := filepath.Join(stagingDir, folder.Label)
		if err := os.MkdirAll(folderDir, 0o755); err != nil {
			return fmt.Errorf("can't create staging directory %s: %w", folderDir, err)
		}

		if err := copyFile(folder.OutputPath, filepath.Join(folderDir, filepath.Base(folder.OutputPath))); err != nil {
			return err
		}

		filesToArchive = append(filesToArchive, folderDir)
	}

	if len(filesToArchive) == 0 {
		return fmt.Errorf("no JUnit report to archive")
	}

	tarGzArchiver := archiver.TarGz{
		Tar: &archiver.Tar{
			OverwriteExisting:      true,
			MkdirAll:               true,
			ImplicitTopLevelFolder: false,
			ContinueOnError:        false,
		},
		CompressionLevel: gzip.BestCompression,
	}

	if err := tarGzArchiver.Archive(filesToArchive, archivePath); err != nil {
		return fmt.Errorf("can't create tar archive %s: %w", archivePath, err)
	}

	return nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src) //nolint:gosec
	if err != nil {
		return fmt.Errorf("can't read file %s: %w", src, err)
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("can't write file %s: %w", dest, err)
	}

	return nil
}
