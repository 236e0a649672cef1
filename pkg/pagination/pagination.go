package pagination

// PageLink is one entry of the page navigation strip returned by the POS
// backend ("previous", numbered pages, "next").
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Page   *int    `json:"page"`
	Active bool    `json:"active"`
}

// Page is the page-based envelope the POS backend wraps listings in.
type Page[T any] struct {
	CurrentPage int        `json:"current_page"`
	Data        []T        `json:"data"`
	From        int        `json:"from"`
	LastPage    int        `json:"last_page"`
	PerPage     int        `json:"per_page"`
	Total       int64      `json:"total"`
	Links       []PageLink `json:"links"`
}

// HasNext reports whether a page after the current one exists.
func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.LastPage
}

// HasPrev reports whether a page before the current one exists.
func (p *Page[T]) HasPrev() bool {
	return p.CurrentPage > 1
}

// NextPage returns the number of the following page, clamped to the last one.
func (p *Page[T]) NextPage() int {
	if p.HasNext() {
		return p.CurrentPage + 1
	}
	return p.LastPage
}

// PrevPage returns the number of the preceding page, clamped to the first one.
func (p *Page[T]) PrevPage() int {
	if p.HasPrev() {
		return p.CurrentPage - 1
	}
	return 1
}

// Single wraps a flat slice in a one-page envelope. Search responses are not
// paginated by the backend, but the screens render everything as a Page.
func Single[T any](items []T) *Page[T] {
	return &Page[T]{
		CurrentPage: 1,
		Data:        items,
		From:        1,
		LastPage:    1,
		PerPage:     len(items),
		Total:       int64(len(items)),
	}
}
