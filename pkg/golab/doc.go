// Package golab provides types, interfaces, and helpers for working with the
// GitLab REST API v4.
//
// # Overview
//
// The golab package defines the domain types (e.g., Project, Issue,
// MergeRequest, Pipeline) and the interfaces for resource-oriented clients
// (e.g., ProjectsClient, IssuesClient). A concrete implementation of these
// clients is provided by the internal client package and is constructed via
// gitlab.New in this module's root client package. Most consumers construct a
// Client once and interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/forgekit-io/golab/pkg/gitlab"
//	  "github.com/forgekit-io/golab/pkg/golab"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gitlab.New(&golab.Config{Host: "gitlab.example.com", Token: "glpat-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx, golab.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (page, per_page, order_by,
// sort, search, filters). List operations drive the pagination engine across
// every page of a collection endpoint and return a Collection[T] that carries
// the concatenated items together with the collection metadata mirrored from
// the X-Total-Pages and X-Total response headers.
//
// # Errors
//
// Every non-2xx API response is represented by a kind-tagged *Error carrying
// the status code, the raw response body, and the request URL. Helpers such
// as IsNotFound, IsAuthentication, and IsRateLimit make it easy to branch on
// common cases. Transport-level failures (DNS, connection refused, timeout)
// are propagated wrapped, never recast into the typed taxonomy.
//
// # Rate-limit telemetry
//
// The client mirrors the RateLimit-Remaining and RateLimit-Reset response
// headers onto process-local state after every request, successful or not.
// The client never backs off on its own; callers inspect RateLimit() and
// decide.
package golab
