package model

type PostFilters struct {
	AuthorID *int64
	Limit    *int
	Offset   *int
}
