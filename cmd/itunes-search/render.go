package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/model"
)

const cellWidth = 22

var (
	labelStyle       = lipgloss.NewStyle().Bold(true)
	cellStyle        = lipgloss.NewStyle().Width(cellWidth).MaxWidth(cellWidth)
	placeholderStyle = cellStyle.Foreground(lipgloss.Color("8"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderSummary(requestURL string, resultCount, unique int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("URI: ")+requestURL,
		labelStyle.Render("Results: ")+fmt.Sprintf("%d (%d distinct artworks)", resultCount, unique),
	)
}

// renderGrid prints the grid as the window shows it: model column c is
// screen line c, model row r is screen column r.
func renderGrid(grid *model.Grid) string {
	lines := make([]string, 0, model.GridCols)
	for col := 0; col < model.GridCols; col++ {
		cells := make([]string, 0, model.GridRows)
		for row := 0; row < model.GridRows; row++ {
			index := model.Index(row, col)
			if grid.IsPlaceholder(index) {
				cells = append(cells, placeholderStyle.Render("default.png"))
				continue
			}
			cells = append(cells, cellStyle.Render(cellLabel(grid.URL(index))))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderInsufficient(err *itunes.InsufficientResultsError) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"URI: "+err.URL,
		errorStyle.Render("Exception: java.lang.IllegalArgumentException: "+err.Error()),
	)
}

// artworkSourceDir separates the per-artwork directory from the file name
// every iTunes thumbnail shares (.../<id>/source/100x100bb.jpg)
const artworkSourceDir = "/source/"

// cellLabel names an artwork URL by a short hash of the whole URL followed by
// its most specific path segment. Equal URLs get equal labels.
func cellLabel(url string) string {
	name := path.Base(url)
	if i := strings.LastIndex(url, artworkSourceDir); i > 0 {
		name = path.Base(url[:i])
	}
	label := fmt.Sprintf("%06x %s", xxhash.Sum64String(url)&0xffffff, name)
	return truncateRunes(label, cellWidth-1)
}

// truncateRunes cuts s to at most limit runes, marking the cut with an ellipsis
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
