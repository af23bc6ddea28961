package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderTable displays the summary as a table.
func RenderTable(w io.Writer, summary Summary) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	for _, folder := range summary.Folders {
		data = append(data, []string{
			folder.Label,
			folder.Status.String(),
			strconv.Itoa(folder.Tests),
			strconv.Itoa(folder.Failures),
			strconv.Itoa(folder.Skipped),
			folder.OutputPath,
		})
	}

	table.AppendBulk(data)

	table.SetHeader([]string{"Folder", "Status", "Tests", "Failures", "Skipped", "Report"})
	table.Render()
}
