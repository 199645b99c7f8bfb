package domain

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Post is the stable contract the widget UI consumes, derived from one
// Notion database page.
type Post struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	MediaURL        string    `json:"mediaUrl"`
	MediaType       MediaType `json:"mediaType"`
	Format          string    `json:"format,omitempty"`
	Platform        string    `json:"platform,omitempty"`
	Date            string    `json:"date,omitempty"`
	MostrarNoWidget bool      `json:"mostrarNoWidget"`
}

// HasMedia reports whether the post resolved a playable media URL.
// Posts without media never reach the widget.
func (p *Post) HasMedia() bool {
	return p.MediaURL != ""
}
