package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"zavasearch/internal/domain"
)

const maxDescriptionRunes = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	columnStyles = map[string]lipgloss.Style{
		"Score":       lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Align(lipgloss.Right),
		"Reranker":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Align(lipgloss.Right),
		"Name":        lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		"Description": lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		"Categories":  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"Price":       lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Align(lipgloss.Right),
		"SKU":         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// ProductTable renders search hits as a console table. showReranker adds the
// semantic reranker score column.
func ProductTable(hits []domain.SearchHit, title string, showReranker bool) string {
	headers := []string{"Score"}
	if showReranker {
		headers = append(headers, "Reranker")
	}
	headers = append(headers, "Name", "Description", "Categories", "Price", "SKU")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			if col < len(headers) {
				if style, ok := columnStyles[headers[col]]; ok {
					return style.Copy().Padding(0, 1)
				}
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, hit := range hits {
		row := []string{fmt.Sprintf("%.3f", hit.Score)}
		if showReranker {
			reranker := ""
			if hit.RerankerScore != nil {
				reranker = fmt.Sprintf("%.3f", *hit.RerankerScore)
			}
			row = append(row, reranker)
		}
		row = append(row,
			hit.Name,
			truncate(hit.Description, maxDescriptionRunes),
			strings.Join(hit.Categories, ", "),
			fmt.Sprintf("$%.2f", hit.Price),
			hit.SKU,
		)
		t.Row(row...)
	}

	return titleStyle.Render(title) + "\n" + t.Render()
}

// truncate cuts s at n runes and appends an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
