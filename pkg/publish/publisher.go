package publish

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/report"
	"github.com/google/uuid"
	"github.com/wolfeidau/humanhash"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Publisher uploads the reports of a run with a FileUploader.
type Publisher struct {
	uploader    FileUploader
	prefix      string
	runID       string
	concurrency int
}

// NewPublisher creates a Publisher storing files under "<prefix>/<runID>/".
func NewPublisher(uploader FileUploader, prefix, runID string) *Publisher {
	return &Publisher{
		uploader:    uploader,
		prefix:      prefix,
		runID:       runID,
		concurrency: defaultConcurrency,
	}
}

// NewRunID generates a random, human-readable run identifier, like "alpha-bravo-charlie-delta".
func NewRunID() (string, error) {
	id := uuid.New()

	runID, err := humanhash.Humanize(id[:], 4)
	if err != nil {
		return "", fmt.Errorf("can't humanize run id: %w", err)
	}

	return runID, nil
}

// TargetPath returns the remote path of a file belonging to the given folder.
// An empty folder label targets the root of the run.
func (p *Publisher) TargetPath(folderLabel, filePath string) string {
	return path.Join(p.prefix, p.runID, folderLabel, filepath.Base(filePath))
}

// Publish uploads every report written during the run, then the archive when archivePath is set.
// It returns the remote paths of the uploaded files, sorted in summary order.
func (p *Publisher) Publish(ctx context.Context, summary report.Summary, archivePath string) ([]string, error) {
	type upload struct {
		filePath   string
		targetPath string
	}

	var uploads []upload
	for _, folder := range summary.Folders {
		if folder.OutputPath == "" {
			continue
		}
		uploads = append(uploads, upload{folder.OutputPath, p.TargetPath(folder.Label, folder.OutputPath)})
	}

	if archivePath != "" {
		uploads = append(uploads, upload{archivePath, p.TargetPath("", archivePath)})
	}

	logger.Infof("Uploading %d files under %s", len(uploads), path.Join(p.prefix, p.runID))

	uploaded := make([]string, len(uploads))

	errG, ctx := errgroup.WithContext(ctx)
	errG.SetLimit(p.concurrency)
	for i, u := range uploads {
		errG.Go(func() error {
			if err := p.uploader.UploadFile(ctx, u.filePath, u.targetPath); err != nil {
				return fmt.Errorf("can't upload %s: %w", u.filePath, err)
			}

			logger.Debugf("Uploaded %s to %s", u.filePath, u.targetPath)

			uploaded[i] = u.targetPath

			return nil
		})
	}

	if err := errG.Wait(); err != nil {
		return nil, err
	}

	return uploaded, nil
}
