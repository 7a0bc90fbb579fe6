package golab

import (
	"net/http"
	"net/url"
	"strconv"
)

// Response is the envelope returned by single-object operations. Data holds
// the decoded payload: parsed JSON for a JSON body, the body text for a
// non-JSON body, or nil for an empty body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Data       interface{}
}

// RequestOptions carries per-request overrides for single-object operations.
// Headers merge on top of the client defaults and win on conflict.
type RequestOptions struct {
	Headers map[string]string
	Query   url.Values
}

// QueryParams represents common query parameters for list operations.
type QueryParams struct {
	Page    int
	PerPage int
	OrderBy string
	Sort    string
	Search  string
	Filters map[string][]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithOrderBy sets the order_by field.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithSearch sets the search term.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithFilter adds a filter value.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// ToValues converts the params to url.Values. The pagination engine always
// overwrites page and per_page with its own loop state.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.OrderBy != "" {
		values.Set("order_by", q.OrderBy)
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}
