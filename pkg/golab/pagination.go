package golab

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Paged is the raw envelope produced by the pagination engine. Items holds
// the concatenation of every fetched page in page order; CurrentPage is the
// number of pages fetched; TotalPages and TotalItems mirror the
// X-Total-Pages and X-Total headers of the last page that carried them, nil
// when the API never sent them.
//
// When the endpoint answered with a non-sequence payload, the engine stops
// and hands that payload back untouched in Single; Items is nil in that
// case. This is the escape hatch for single-object responses reached
// through the paginated call path.
type Paged struct {
	Items       []json.RawMessage
	CurrentPage int
	TotalPages  *int
	TotalItems  *int
	Headers     http.Header
	Single      interface{}
}

// IsCollection reports whether the payload was a sequence on every fetched
// page.
func (p *Paged) IsCollection() bool {
	return p.Single == nil
}

// Collection is the typed collection envelope returned by list operations.
type Collection[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  *int
	TotalItems  *int
	Headers     http.Header
}

// CollectionFrom decodes the accumulated raw items of a Paged result into a
// typed collection. It fails with ErrNotACollection when the underlying
// payload was not a sequence.
func CollectionFrom[T any](paged *Paged) (*Collection[T], error) {
	if !paged.IsCollection() {
		return nil, ErrNotACollection
	}

	items := make([]T, 0, len(paged.Items))

	for i, raw := range paged.Items {
		var item T

		err := json.Unmarshal(raw, &item)
		if err != nil {
			return nil, fmt.Errorf("decoding collection item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return &Collection[T]{
		Items:       items,
		CurrentPage: paged.CurrentPage,
		TotalPages:  paged.TotalPages,
		TotalItems:  paged.TotalItems,
		Headers:     paged.Headers,
	}, nil
}
