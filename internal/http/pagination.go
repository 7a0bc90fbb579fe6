package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forgekit-io/golab/internal/constants"
	"github.com/forgekit-io/golab/pkg/golab"
)

// DoPaginated drives Do across the pages of a collection endpoint and
// assembles a uniform result.
//
// Pages are fetched strictly sequentially: each iteration needs the
// previous page's length and headers to decide whether to continue. Two
// independent termination signals are honored. A short page (fewer items
// than per_page) is authoritative and checked first; the X-Total-Pages
// header is the fallback for endpoints that paginate with exactly full
// pages. When the signals disagree, the short page wins.
//
// Errors from the executor abort the loop and propagate; no page is ever
// retried.
func (c *Client) DoPaginated(ctx context.Context, method, path string, body interface{}, params *golab.QueryParams) (*golab.Paged, error) {
	perPage := constants.DefaultPerPage
	baseQuery := url.Values{}

	if params != nil {
		if params.PerPage > 0 {
			perPage = params.PerPage
		}

		baseQuery = params.ToValues()
	}

	accumulated := []json.RawMessage{}
	page := 1

	var totalPages, totalItems *int

	var lastHeaders http.Header

	for {
		// page and per_page always overwrite caller-supplied values.
		query := cloneValues(baseQuery)
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))

		resp, err := c.Do(ctx, &Request{Method: method, Path: path, Query: query, Body: body})
		if err != nil {
			return nil, err
		}

		lastHeaders = resp.Headers

		items, ok := decodeItems(resp.Body)
		if !ok {
			// Non-collection payload: hand it back untouched.
			return &golab.Paged{
				Single:      resp.Data,
				CurrentPage: page,
				TotalPages:  totalPages,
				TotalItems:  totalItems,
				Headers:     resp.Headers,
			}, nil
		}

		accumulated = append(accumulated, items...)

		// Only the last page's header values persist in the envelope.
		if value := resp.Headers.Get(HeaderTotalPages); value != "" {
			if n, err := strconv.Atoi(value); err == nil {
				totalPages = &n
			}
		}

		if value := resp.Headers.Get(HeaderTotal); value != "" {
			if n, err := strconv.Atoi(value); err == nil {
				totalItems = &n
			}
		}

		page++

		if len(items) < perPage {
			break
		}

		if totalPages != nil && page > *totalPages {
			break
		}
	}

	return &golab.Paged{
		Items:       accumulated,
		CurrentPage: page - 1,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Headers:     lastHeaders,
	}, nil
}

// decodeItems decodes a response body into raw collection elements. The
// second return value is false for any non-sequence payload, including
// null and an empty body.
func decodeItems(body []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage

	err := json.Unmarshal(trimmed, &items)
	if err != nil {
		return nil, false
	}

	return items, true
}

func cloneValues(values url.Values) url.Values {
	clone := make(url.Values, len(values))

	for key, vals := range values {
		clone[key] = append([]string(nil), vals...)
	}

	return clone
}
