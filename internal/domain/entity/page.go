package entity

// PageRequest selects a zero-based page of a fixed size.
type PageRequest struct {
	Number int
	Size   int
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one slice of an ordered result set plus the totals clients use to paginate.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage builds a page from its content and the total number of records.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:          content,
		Number:           req.Number,
		Size:             req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            req.Number == 0,
		Last:             req.Number+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
