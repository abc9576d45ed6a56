package entity

type Client struct {
	ID      string
	Name    string
	Company string
	Logo    string
}
