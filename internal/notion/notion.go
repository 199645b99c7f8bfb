package notion

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=notion.go -destination=mocks/mock.go
type Client interface {
	// QueryDatabase returns the pages of a database, newest first, capped at
	// one maximum-size result page. Exactly one upstream call is issued.
	QueryDatabase(ctx context.Context, databaseID string) ([]Page, error)
}

// Page is one raw database row as returned by the Notion query API. Property
// names vary across tenants and schema generations, so Properties stays a
// plain bag that the mapper resolves against its candidate key lists.
type Page struct {
	ID          string              `json:"id"`
	CreatedTime string              `json:"created_time"`
	Properties  map[string]Property `json:"properties"`
}

// Property carries every value shape the widget cares about. Notion tags each
// property with its type and fills only the matching field.
type Property struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Files    []File     `json:"files,omitempty"`
	Select   *Select    `json:"select,omitempty"`
	Checkbox bool       `json:"checkbox,omitempty"`
	Date     *Date      `json:"date,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

// File is a single attachment: either uploaded to Notion ("file") or an
// external link ("external"), never both.
type File struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	File     *FileRef      `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

type FileRef struct {
	URL string `json:"url"`
}

type ExternalFile struct {
	URL string `json:"url"`
}

type Select struct {
	Name string `json:"name"`
}

type Date struct {
	Start string `json:"start"`
}
