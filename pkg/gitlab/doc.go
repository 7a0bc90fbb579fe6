// Package gitlab provides the primary entry point for constructing a GitLab
// REST API v4 client that implements the golab.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the golab package. Most applications
// import this package to build a client, then use the returned golab.Client
// to access resource-specific clients, for example Projects(), Issues(),
// MergeRequests().
//
// Quick start
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
//
//	  cli, err := gitlab.New(&golab.Config{
//	    Host:  "gitlab.example.com", // https:// is assumed when omitted
//	    Token: "glpat-...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  issues, err := cli.Issues().List(ctx, 42, golab.NewQueryParams().WithFilter("state", "opened"))
//	  if err != nil { log.Fatal(err) }
//	  _ = issues
//	}
//
// # Helpers
//
// The package also provides the convenience constructor NewWithToken that
// wraps New with the minimal configuration.
package gitlab
