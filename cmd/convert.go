package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/convert"
	"github.com/btms-qa/uireport/pkg/junit"
	"github.com/btms-qa/uireport/pkg/publish"
	"github.com/btms-qa/uireport/pkg/report"
	"github.com/btms-qa/uireport/pkg/uipath"
)

type convertOpts struct {
	Root              string   `mapstructure:"root"`
	ReportName        string   `mapstructure:"report_name"`
	SuitePrefix       string   `mapstructure:"suite_prefix"`
	Exclude           []string `mapstructure:"exclude"`
	SummaryFile       string   `mapstructure:"summary_file"`
	Archive           string   `mapstructure:"archive"`
	S3Bucket          string   `mapstructure:"s3_bucket"`
	S3Region          string   `mapstructure:"s3_region"`
	S3Prefix          string   `mapstructure:"s3_prefix"`
	Strict            bool     `mapstructure:"strict"`
	FailOnTestFailure bool     `mapstructure:"fail_on_test_failure"`
}

func convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [ROOT]",
		Short: "Convert every report folder of ROOT to JUnit XML",
		Long: `uireport convert lists the folders directly under ROOT (default ` + convert.DefaultRoot + `),
extracts the test cases of every HTML page of a folder, and writes a JUnit report in that folder.

Folders that cannot be converted are logged and skipped. Only a ROOT that cannot be read stops the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: convertAction,
	}

	cmd.Flags().String("report-name", convert.DefaultReportName,
		"Name of the JUnit report written in every converted folder.")
	cmd.Flags().String("suite-prefix", junit.DefaultSuitePrefix,
		`Prefix of the test suite name, the folder name is appended as "<prefix> - <folder>".`)
	cmd.Flags().StringSlice("exclude", nil,
		"Folder name patterns to skip, using the .dockerignore syntax. Can be repeated.")
	cmd.Flags().String("summary-file", "",
		"Write a YAML summary of the run to this file.")
	cmd.Flags().String("archive", "",
		"Bundle every generated report in this .tar.gz archive.")
	cmd.Flags().String("s3-bucket", "",
		"Upload the generated reports (and the archive) to this S3 bucket.")
	cmd.Flags().String("s3-region", "",
		"AWS region of the S3 bucket. Defaults to the region of the AWS configuration.")
	cmd.Flags().String("s3-prefix", "uireport",
		"Key prefix of the uploaded files. Files are stored under <prefix>/<run-id>/<folder>/.")
	cmd.Flags().Bool("strict", false,
		"Exit with an error when a folder or a page could not be converted.")
	cmd.Flags().Bool("fail-on-test-failure", false,
		"Exit with an error when at least one converted test case failed.")

	return cmd
}

func convertAction(cmd *cobra.Command, args []string) error {
	bindPFlagsSnakeCase(cmd.Flags())

	opts := convertOpts{}
	if err := hydrateOptsFromViper(&opts); err != nil {
		return err
	}

	if len(args) == 1 {
		opts.Root = args[0]
	}

	return doConvert(cmd.Context(), cmd.OutOrStdout(), opts)
}

func doConvert(ctx context.Context, out io.Writer, opts convertOpts) error {
	if opts.Root == "" {
		opts.Root = convert.DefaultRoot
	}

	if opts.Archive != "" && !isTarGz(opts.Archive) {
		return fmt.Errorf("archive %q must have a .tar.gz or .tgz extension", opts.Archive)
	}

	converter, err := convert.NewConverter(uipath.GoqueryParser{}, convert.Options{
		ReportName:  opts.ReportName,
		SuitePrefix: opts.SuitePrefix,
		Exclude:     opts.Exclude,
	})
	if err != nil {
		return err
	}

	summary, err := converter.Walk(opts.Root)
	if err != nil {
		return err
	}

	report.PrintReports(summary)
	report.RenderTable(out, summary)

	if opts.SummaryFile != "" {
		if err := report.WriteSummaryFile(opts.SummaryFile, summary); err != nil {
			return err
		}
		logger.Infof("Summary written to %s", opts.SummaryFile)
	}

	if err := publishReports(ctx, opts, summary); err != nil {
		return err
	}

	return summary.CheckError(opts.Strict, opts.FailOnTestFailure)
}

func publishReports(ctx context.Context, opts convertOpts, summary report.Summary) error {
	if opts.Archive == "" && opts.S3Bucket == "" {
		return nil
	}

	if len(summary.OutputPaths()) == 0 {
		logger.Warnf("No JUnit report was generated, nothing to publish")
		return nil
	}

	if opts.Archive != "" {
		if err := publish.CreateArchive(opts.Archive, summary); err != nil {
			return err
		}
		logger.Infof("Reports archived in %s", opts.Archive)
	}

	if opts.S3Bucket == "" {
		return nil
	}

	uploader, err := publish.NewS3Uploader(ctx, opts.S3Region, opts.S3Bucket)
	if err != nil {
		return err
	}

	runID, err := publish.NewRunID()
	if err != nil {
		return err
	}

	uploaded, err := publish.NewPublisher(uploader, opts.S3Prefix, runID).Publish(ctx, summary, opts.Archive)
	if err != nil {
		return fmt.Errorf("upload of run %s failed: %w", runID, err)
	}

	logger.Infof("Run %s: %d files uploaded to s3://%s", runID, len(uploaded), opts.S3Bucket)
	for _, target := range uploaded {
		logger.Debugf("Uploaded s3://%s/%s", opts.S3Bucket, target)
	}

	return nil
}

func isTarGz(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz")
}
