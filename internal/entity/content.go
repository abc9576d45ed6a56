package entity

import "time"

const (
	ContentTypeBlog      = "blogs"
	ContentTypePortfolio = "portfolios"
	ContentTypeService   = "services"
)

// DefaultCategory is what the admin panel leaves behind when no category
// was assigned to a record.
const DefaultCategory = "Umum"

type Content struct {
	ID           string
	Type         string
	Title        string
	Excerpt      string
	Body         string
	Image        string
	Images       []string
	Category     string
	Author       string
	Client       string
	Technologies []string
	Results      []string
	CreatedAt    time.Time
}

func ContentTypes() []string {
	return []string{ContentTypeBlog, ContentTypePortfolio, ContentTypeService}
}

func IsContentType(t string) bool {
	switch t {
	case ContentTypeBlog, ContentTypePortfolio, ContentTypeService:
		return true
	}
	return false
}
