// Package dtclient provides the primary entry point for constructing an
// IETF Datatracker API client that implements the datatracker.Client
// interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the datatracker package. Most
// applications should import dtclient to build a client, then use the
// returned datatracker.Client to access resource-specific clients, for
// example Persons(), Emails(), Documents(), and Groups().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/csperkins/datatracker-go/pkg/datatracker"
//	  "github.com/csperkins/datatracker-go/pkg/dtclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: the production Datatracker, read-only, no auth.
//	  cli, err := dtclient.New(nil)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a non-default instance:
//	  cli, err = dtclient.New(&datatracker.Config{
//	    APIEndpoint: "https://dt-test.example.org",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  person, err := cli.Persons().GetByEmail(ctx, "csp@csperkins.org")
//	  if err != nil { log.Fatal(err) }
//	  _ = person
//	}
//
// # Helpers
//
// The package also provides the convenience constructor NewWithEndpoint,
// which wraps New with the appropriate configuration.
package dtclient
