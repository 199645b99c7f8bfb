package widgetimpl

import (
	"testing"

	"github.com/s2hstudio/insta-widget-backend/internal/domain"
	"github.com/s2hstudio/insta-widget-backend/internal/notion"
)

func titleProp(text string) notion.Property {
	return notion.Property{
		Type:  "title",
		Title: []notion.RichText{{PlainText: text}},
	}
}

func fileProp(url string) notion.Property {
	return notion.Property{
		Type: "files",
		Files: []notion.File{
			{Type: "file", File: &notion.FileRef{URL: url}},
		},
	}
}

func externalProp(url string) notion.Property {
	return notion.Property{
		Type: "files",
		Files: []notion.File{
			{Type: "external", External: &notion.ExternalFile{URL: url}},
		},
	}
}

func selectProp(name string) notion.Property {
	return notion.Property{Type: "select", Select: &notion.Select{Name: name}}
}

func TestMapPageToPost_TitleFallback(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]notion.Property
		want  string
	}{
		{
			name:  "primary title property",
			props: map[string]notion.Property{"Name": titleProp("  lançamento  ")},
			want:  "lançamento",
		},
		{
			name:  "legacy title property when primary is absent",
			props: map[string]notion.Property{"Nome": titleProp("bastidores")},
			want:  "bastidores",
		},
		{
			name: "primary wins over legacy",
			props: map[string]notion.Property{
				"Name": titleProp("primeiro"),
				"Nome": titleProp("segundo"),
			},
			want: "primeiro",
		},
		{
			name:  "no title property at all",
			props: map[string]notion.Property{},
			want:  PlaceholderTitle,
		},
		{
			name:  "title present but blank",
			props: map[string]notion.Property{"Name": titleProp("   ")},
			want:  PlaceholderTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := MapPageToPost(notion.Page{ID: "p1", Properties: tt.props})
			if post.Title != tt.want {
				t.Errorf("Title = %q, want %q", post.Title, tt.want)
			}
		})
	}
}

func TestMapPageToPost_Media(t *testing.T) {
	t.Run("uploaded file reference", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID: "p1",
			Properties: map[string]notion.Property{
				"imagens e vídeos": fileProp("https://files.notion.so/clip.mp4?X-Amz-Expires=3600"),
			},
		})
		if post.MediaURL != "https://files.notion.so/clip.mp4?X-Amz-Expires=3600" {
			t.Errorf("unexpected MediaURL %q", post.MediaURL)
		}
		if post.MediaType != domain.MediaTypeVideo {
			t.Errorf("MediaType = %q, want video", post.MediaType)
		}
	})

	t.Run("external link reference", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID: "p1",
			Properties: map[string]notion.Property{
				"Imagem": externalProp("https://cdn.example.com/foto.jpg"),
			},
		})
		if post.MediaURL != "https://cdn.example.com/foto.jpg" {
			t.Errorf("unexpected MediaURL %q", post.MediaURL)
		}
		if post.MediaType != domain.MediaTypeImage {
			t.Errorf("MediaType = %q, want image", post.MediaType)
		}
	})

	t.Run("first candidate property wins", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID: "p1",
			Properties: map[string]notion.Property{
				"imagens e vídeos": fileProp("https://files.notion.so/a.jpg"),
				"imagens":          fileProp("https://files.notion.so/b.jpg"),
			},
		})
		if post.MediaURL != "https://files.notion.so/a.jpg" {
			t.Errorf("unexpected MediaURL %q", post.MediaURL)
		}
	})

	t.Run("no file collection leaves media absent", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID:         "p1",
			Properties: map[string]notion.Property{"Name": titleProp("x")},
		})
		if post.HasMedia() {
			t.Errorf("expected no media, got %q", post.MediaURL)
		}
		if post.MediaType != domain.MediaTypeImage {
			t.Errorf("MediaType = %q, want image default", post.MediaType)
		}
	})

	t.Run("empty first candidate shadows later ones", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID: "p1",
			Properties: map[string]notion.Property{
				"imagens e vídeos": {Type: "files", Files: []notion.File{}},
				"Imagem":           externalProp("https://cdn.example.com/foto.jpg"),
			},
		})
		if post.HasMedia() {
			t.Errorf("expected no media when the first present candidate is empty, got %q", post.MediaURL)
		}
	})

	t.Run("empty file list leaves media absent", func(t *testing.T) {
		post := MapPageToPost(notion.Page{
			ID: "p1",
			Properties: map[string]notion.Property{
				"imagens": {Type: "files", Files: []notion.File{}},
			},
		})
		if post.HasMedia() {
			t.Errorf("expected no media, got %q", post.MediaURL)
		}
	})
}

func TestInferMediaType(t *testing.T) {
	tests := []struct {
		url  string
		want domain.MediaType
	}{
		{"https://files.notion.so/clip.mp4", domain.MediaTypeVideo},
		{"https://files.notion.so/clip.MOV", domain.MediaTypeVideo},
		{"https://files.notion.so/clip.webm?sig=abc", domain.MediaTypeVideo},
		{"https://files.notion.so/clip.m4v?a=1&b=2", domain.MediaTypeVideo},
		{"https://files.notion.so/foto.jpg", domain.MediaTypeImage},
		{"https://files.notion.so/foto.png?x=.mp4", domain.MediaTypeImage},
		{"https://files.notion.so/semextensao", domain.MediaTypeImage},
		{"", domain.MediaTypeImage},
	}

	for _, tt := range tests {
		if got := inferMediaType(tt.url); got != tt.want {
			t.Errorf("inferMediaType(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestMapPageToPost_OtherFields(t *testing.T) {
	post := MapPageToPost(notion.Page{
		ID: "page-id",
		Properties: map[string]notion.Property{
			"formato":           selectProp("Reels"),
			"plataforma":        selectProp("Instagram"),
			"mostrar no widget": {Type: "checkbox", Checkbox: true},
			"data":              {Type: "date", Date: &notion.Date{Start: "2026-08-30"}},
		},
	})

	if post.ID != "page-id" {
		t.Errorf("ID = %q", post.ID)
	}
	if post.Format != "reels" {
		t.Errorf("Format = %q, want lower-cased %q", post.Format, "reels")
	}
	if post.Platform != "Instagram" {
		t.Errorf("Platform = %q", post.Platform)
	}
	if !post.MostrarNoWidget {
		t.Error("MostrarNoWidget should be true")
	}
	if post.Date != "2026-08-30" {
		t.Errorf("Date = %q", post.Date)
	}
}

func TestMapPageToPost_EmptyPage(t *testing.T) {
	post := MapPageToPost(notion.Page{ID: "empty"})

	if post.ID != "empty" {
		t.Errorf("ID = %q", post.ID)
	}
	if post.Title != PlaceholderTitle {
		t.Errorf("Title = %q", post.Title)
	}
	if post.HasMedia() || post.MostrarNoWidget || post.Format != "" || post.Platform != "" || post.Date != "" {
		t.Errorf("empty page should map to an empty post, got %+v", post)
	}
}
