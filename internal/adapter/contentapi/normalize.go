package contentapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/artdevata/content-service/internal/entity"
)

// rawContent carries every field name the admin panel has been observed to
// emit for blogs, portfolios and services. Normalization collapses the
// variants onto the entity fields.
type rawContent struct {
	ID           json.RawMessage `json:"id"`
	AltID        json.RawMessage `json:"_id"`
	Title        string          `json:"title"`
	Name         string          `json:"name"`
	Excerpt      string          `json:"excerpt"`
	Content      string          `json:"content"`
	Body         string          `json:"body"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	ImageURL     string          `json:"image_url"`
	Thumbnail    string          `json:"thumbnail"`
	Images       []string        `json:"images"`
	Category     string          `json:"category"`
	Author       string          `json:"author"`
	Client       string          `json:"client"`
	Technologies []string        `json:"technologies"`
	Results      []string        `json:"results"`
	CreatedAt    string          `json:"created_at"`
	AltCreatedAt string          `json:"createdAt"`
}

type rawClient struct {
	ID      json.RawMessage `json:"id"`
	AltID   json.RawMessage `json:"_id"`
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Company string          `json:"company"`
	Logo    string          `json:"logo"`
	Image   string          `json:"image"`
	LogoURL string          `json:"logo_url"`
	AltLogo string          `json:"logoUrl"`
}

// createdAtLayouts covers the timestamp shapes the Laravel admin emits.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r rawContent) normalize(contentType, storageBase string) *entity.Content {
	item := &entity.Content{
		ID:           decodeID(r.ID, r.AltID),
		Type:         contentType,
		Title:        firstNonEmpty(r.Title, r.Name),
		Excerpt:      unescapeNewlines(r.Excerpt),
		Body:         unescapeNewlines(firstNonEmpty(r.Content, r.Body, r.Description)),
		Image:        resolveImagePath(storageBase, firstNonEmpty(r.Image, r.ImageURL, r.Thumbnail)),
		Category:     firstNonEmpty(r.Category, entity.DefaultCategory),
		Author:       r.Author,
		Client:       r.Client,
		Technologies: r.Technologies,
		Results:      r.Results,
		CreatedAt:    parseCreatedAt(firstNonEmpty(r.CreatedAt, r.AltCreatedAt)),
	}
	for _, img := range r.Images {
		if resolved := resolveImagePath(storageBase, img); resolved != "" {
			item.Images = append(item.Images, resolved)
		}
	}
	// Gallery falls back to the main image when the admin uploaded none.
	if len(item.Images) == 0 && item.Image != "" {
		item.Images = []string{item.Image}
	}
	if item.Technologies == nil {
		item.Technologies = []string{}
	}
	if item.Results == nil {
		item.Results = []string{}
	}
	return item
}

func (r rawClient) normalize(storageBase string) *entity.Client {
	return &entity.Client{
		ID:      decodeID(r.ID, r.AltID),
		Name:    firstNonEmpty(r.Name, r.Title),
		Company: r.Company,
		Logo:    resolveImagePath(storageBase, firstNonEmpty(r.Logo, r.Image, r.LogoURL, r.AltLogo)),
	}
}

// decodeID accepts string and integer identifiers and returns the first
// usable one as a string.
func decodeID(raws ...json.RawMessage) string {
	for _, raw := range raws {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// unescapeNewlines turns literal "\r\n" and "\n" sequences stored by the
// admin editor into real newlines.
func unescapeNewlines(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, "\n")
	return strings.ReplaceAll(s, `\n`, "\n")
}

// resolveImagePath keeps absolute URLs as-is and prefixes storage-relative
// paths with the configured storage base URL.
func resolveImagePath(storageBase, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return strings.TrimRight(storageBase, "/") + "/" + strings.TrimLeft(path, "/")
}

// parseCreatedAt returns the zero time for anything unparseable; the zero
// time sorts after every valid timestamp in the list presenter.
func parseCreatedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
