package widgetimpl

import (
	"path"
	"strings"

	"github.com/s2hstudio/insta-widget-backend/internal/domain"
	"github.com/s2hstudio/insta-widget-backend/internal/notion"
)

// PlaceholderTitle is used when no title property resolves to text.
const PlaceholderTitle = "sem título"

// Property names vary across tenants and schema generations. Each semantic
// field resolves against an ordered candidate list, first present wins.
var (
	titleKeys = []string{"Name", "Nome", "Título"}

	mediaKeys = []string{
		"imagens e vídeos",
		"imagens e videos",
		"Imagem",
		"imagens",
		"imagens e vídeo",
	}
)

const (
	formatKey   = "formato"
	platformKey = "plataforma"
	visibleKey  = "mostrar no widget"
	dateKey     = "data"
)

// MapPageToPost converts one raw Notion page into the widget post contract.
// It is pure and total: any well-formed page maps to a post, pages with no
// usable properties map to a placeholder-titled, media-less post that the
// filter pipeline later drops.
func MapPageToPost(page notion.Page) domain.Post {
	props := page.Properties

	post := domain.Post{
		ID:        page.ID,
		Title:     PlaceholderTitle,
		MediaType: domain.MediaTypeImage,
	}

	for _, key := range titleKeys {
		prop, ok := props[key]
		if !ok || len(prop.Title) == 0 {
			continue
		}
		if title := strings.TrimSpace(prop.Title[0].PlainText); title != "" {
			post.Title = title
			break
		}
	}

	// first present property wins even when its file list is empty; a
	// lower-priority candidate never supplies media behind an empty one
	for _, key := range mediaKeys {
		prop, ok := props[key]
		if !ok {
			continue
		}
		if len(prop.Files) > 0 {
			// first attachment wins; "file" and "external" are mutually exclusive
			file := prop.Files[0]
			switch {
			case file.File != nil:
				post.MediaURL = file.File.URL
			case file.External != nil:
				post.MediaURL = file.External.URL
			}
		}
		break
	}
	post.MediaType = inferMediaType(post.MediaURL)

	if prop, ok := props[formatKey]; ok && prop.Select != nil {
		post.Format = strings.ToLower(prop.Select.Name)
	}
	if prop, ok := props[platformKey]; ok && prop.Select != nil {
		post.Platform = prop.Select.Name
	}
	if prop, ok := props[visibleKey]; ok {
		post.MostrarNoWidget = prop.Checkbox
	}
	if prop, ok := props[dateKey]; ok && prop.Date != nil {
		post.Date = prop.Date.Start
	}

	return post
}

// inferMediaType classifies a media URL by its path extension, query string
// ignored. Anything that is not a recognized video extension is an image;
// an undecidable URL is never an error.
func inferMediaType(mediaURL string) domain.MediaType {
	clean, _, _ := strings.Cut(mediaURL, "?")

	switch strings.ToLower(path.Ext(clean)) {
	case ".mp4", ".mov", ".webm", ".m4v":
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}
