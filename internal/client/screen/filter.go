package screen

import (
	"strings"

	"github.com/greengarden/greengarden-server/internal/model"
)

// CategoryAll disables the category facet.
const CategoryAll = "all"

// FilterCategories are the facet values offered by the plant list.
func FilterCategories() []string {
	out := []string{CategoryAll}
	for _, c := range model.Categories() {
		out = append(out, string(c))
	}
	return out
}

// FilterPlants returns the plants that pass both facets, in input order.
// A category other than "all" keeps plants whose category equals it ignoring
// case; values outside the known set match nothing. A non-blank search keeps
// plants whose name contains it ignoring case.
func FilterPlants(plants []model.Plant, category, search string) []model.Plant {
	category = strings.ToLower(strings.TrimSpace(category))
	search = strings.TrimSpace(search)
	needle := strings.ToLower(search)

	out := make([]model.Plant, 0, len(plants))
	for _, p := range plants {
		if category != "" && category != CategoryAll && strings.ToLower(string(p.Category)) != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.PlantName), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
