package entities

// ListResult tags a listing as empty or populated so clients never
// have to guess from the payload type.
type ListResult[T any] struct {
	Found   bool   `json:"found"`
	Count   int    `json:"count"`
	Items   []T    `json:"items"`
	Message string `json:"message,omitempty"`
}

// NewListResult builds a tagged result, using emptyMessage when items is empty
func NewListResult[T any](items []T, emptyMessage string) ListResult[T] {
	if len(items) == 0 {
		return ListResult[T]{Found: false, Count: 0, Items: []T{}, Message: emptyMessage}
	}
	return ListResult[T]{Found: true, Count: len(items), Items: items}
}
