package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const fmTemplate = `---
title: "%s"
---
`

func docgenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate the markdown documentation of the uireport commands.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docPath, err := cmd.Flags().GetString("path")
			if err != nil {
				return err
			}

			return generateDocs(rootCmd, docPath)
		},
	}
	cmd.Flags().String("path", "./docs/cmd", "path to write the generated documentation to")

	return cmd
}

func generateDocs(root *cobra.Command, docPath string) error {
	if err := os.MkdirAll(docPath, 0o750); err != nil {
		return fmt.Errorf("can't create documentation directory %s: %w", docPath, err)
	}

	return doc.GenMarkdownTreeCustom(root, docPath, filePrepender, linkHandler)
}

// filePrepender adds a front matter with the command name, "uireport_convert.md" becomes "uireport convert".
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	return fmt.Sprintf(fmTemplate, strings.ReplaceAll(base, "_", " "))
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	return "../" + strings.ToLower(base) + "/"
}
