package main

import (
	"fmt"

	"github.com/automoto/parrybound/assets"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Long:  `Shows every bundled level with its size and spawner count.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := assets.LoadLevels()
	if err != nil {
		return err
	}

	rows := [][]string{{"#", "Name", "Title", "Size", "Spawners"}}
	for i, lvl := range levels {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			lvl.Name,
			lvl.Title,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			fmt.Sprint(len(lvl.SpawnerMarkers())),
		})
	}

	fmt.Println(renderTable(rows))
	fmt.Println()
	fmt.Println(dimStyle.Render("Run 'parrybound --level <n>' to play a level directly."))
	return nil
}

// renderTable left-aligns every column to its widest cell and styles the header row.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			if r == 0 {
				style = style.Inherit(headerStyle)
			}
			cells[i] = style.Render(cell)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
