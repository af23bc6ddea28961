package publish_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/mock"
	"github.com/btms-qa/uireport/pkg/publish"
	"github.com/btms-qa/uireport/pkg/report"
	"github.com/mholt/archiver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lvl := "fatal"
	logger.SetLevel(&lvl)
	os.Exit(m.Run())
}

func convertedSummary(t *testing.T) report.Summary {
	t.Helper()

	root := t.TempDir()
	summary := report.NewSummary(root)
	for _, label := range []string{"suiteA", "suiteB"} {
		outputPath := filepath.Join(root, label, "junit-report.xml")
		require.NoError(t, os.MkdirAll(filepath.Dir(outputPath), 0o755))
		require.NoError(t, os.WriteFile(outputPath, []byte("<testsuites>"+label+"</testsuites>"), 0o644))
		summary.Folders = append(summary.Folders, report.FolderReport{
			Label:      label,
			Path:       filepath.Dir(outputPath),
			Status:     report.FolderStatusConverted,
			OutputPath: outputPath,
		})
	}
	summary.Folders = append(summary.Folders, report.FolderReport{
		Label:  "empty",
		Status: report.FolderStatusEmpty,
	})

	return summary
}

func TestNewRunID(t *testing.T) {
	t.Parallel()

	runID, err := publish.NewRunID()
	require.NoError(t, err)
	assert.Len(t, strings.Split(runID, "-"), 4)

	other, err := publish.NewRunID()
	require.NoError(t, err)
	assert.NotEqual(t, runID, other)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	summary := convertedSummary(t)
	archivePath := filepath.Join(t.TempDir(), "junit-reports.tar.gz")
	require.NoError(t, os.WriteFile(archivePath, []byte("archive"), 0o644))

	uploader := &mock.Uploader{}
	publisher := publish.NewPublisher(uploader, "uipath/btms", "alpha-bravo-charlie-delta")

	uploaded, err := publisher.Publish(context.Background(), summary, archivePath)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"uipath/btms/alpha-bravo-charlie-delta/suiteA/junit-report.xml",
		"uipath/btms/alpha-bravo-charlie-delta/suiteB/junit-report.xml",
		"uipath/btms/alpha-bravo-charlie-delta/junit-reports.tar.gz",
	}, uploaded)

	assert.Equal(t, []mock.UploadArgs{
		{FilePath: archivePath, TargetPath: "uipath/btms/alpha-bravo-charlie-delta/junit-reports.tar.gz"},
		{FilePath: summary.Folders[0].OutputPath, TargetPath: "uipath/btms/alpha-bravo-charlie-delta/suiteA/junit-report.xml"},
		{FilePath: summary.Folders[1].OutputPath, TargetPath: "uipath/btms/alpha-bravo-charlie-delta/suiteB/junit-report.xml"},
	}, uploader.Calls())
}

func TestPublisher_Publish_WithoutArchive(t *testing.T) {
	t.Parallel()

	uploader := &mock.Uploader{}
	uploaded, err := publish.NewPublisher(uploader, "", "run").Publish(context.Background(), convertedSummary(t), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"run/suiteA/junit-report.xml", "run/suiteB/junit-report.xml"}, uploaded)
	assert.Len(t, uploader.Calls(), 2)
}

func TestPublisher_Publish_Error(t *testing.T) {
	t.Parallel()

	uploader := &mock.Uploader{
		Errors: map[string]error{
			"run/suiteB/junit-report.xml": errors.New("access denied"),
		},
	}

	_, err := publish.NewPublisher(uploader, "", "run").Publish(context.Background(), convertedSummary(t), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "can't upload")
	assert.ErrorContains(t, err, "access denied")
}

func TestCreateArchive(t *testing.T) {
	t.Parallel()

	summary := convertedSummary(t)
	archivePath := filepath.Join(t.TempDir(), "junit-reports.tar.gz")

	require.NoError(t, publish.CreateArchive(archivePath, summary))
	require.FileExists(t, archivePath)

	extracted := t.TempDir()
	require.NoError(t, archiver.NewTarGz().Unarchive(archivePath, extracted))

	for _, label := range []string{"suiteA", "suiteB"} {
		data, err := os.ReadFile(filepath.Join(extracted, label, "junit-report.xml"))
		require.NoError(t, err)
		assert.Equal(t, "<testsuites>"+label+"</testsuites>", string(data))
	}
	assert.NoDirExists(t, filepath.Join(extracted, "empty"))
}

func TestCreateArchive_NothingToArchive(t *testing.T) {
	t.Parallel()

	err := publish.CreateArchive(filepath.Join(t.TempDir(), "out.tar.gz"), report.NewSummary("root"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "no JUnit report to archive")
}

func TestNewS3Uploader(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		uploader, err := publish.NewS3Uploader(context.Background(), "eu-west-3", "bucket")
		require.NoError(t, err)
		assert.NotNil(t, uploader)
	})

	t.Run("no bucket", func(t *testing.T) {
		t.Parallel()

		_, err := publish.NewS3Uploader(context.Background(), "eu-west-3", "")
		require.Error(t, err)
		assert.ErrorContains(t, err, "bucket name is required for S3 upload")
	})
}

func TestS3Uploader_UploadFile_MissingFile(t *testing.T) {
	t.Parallel()

	uploader, err := publish.NewS3Uploader(context.Background(), "eu-west-3", "bucket")
	require.NoError(t, err)

	err = uploader.UploadFile(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), "target/path")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no such file or directory")
}
