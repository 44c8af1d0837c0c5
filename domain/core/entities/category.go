package entities

// Category groups questions under a display label
type Category struct {
	ID   int
	Type string
}

// CategoryMap returns the id → label mapping used by every category listing
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

// DefaultCategories are the labels seeded into an empty database
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}
