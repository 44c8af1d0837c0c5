package queries

// ListCategoriesQuery asks for every category
type ListCategoriesQuery struct{}

// Validate validates the query
func (q ListCategoriesQuery) Validate() error {
	return nil
}

// ListCategoriesResult maps category ids to their labels
type ListCategoriesResult struct {
	Categories map[int]string
}
