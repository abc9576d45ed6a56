package entity

type Lead struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}
