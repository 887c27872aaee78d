// Package datatracker provides types, interfaces, and helpers for reading
// the IETF Datatracker API.
//
// # Overview
//
// The datatracker package defines the domain types (Person, Email,
// Document, Group and their historical/state variants), the typed resource
// URIs that reference them, and the interfaces for the resource-family
// clients (PersonsClient, EmailsClient, DocumentsClient, GroupsClient). A
// concrete implementation is provided by the dtclient package, which wires
// configuration and transport. Most consumers should import dtclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := dtclient.New(&datatracker.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  person, err := cli.Persons().GetByEmail(ctx, "csp@csperkins.org")
//	  if err != nil { log.Fatal(err) }
//	  _ = person
//	}
//
// # Typed resource URIs
//
// Cross-resource references on the wire are server-relative paths. They
// decode into distinct named types (PersonURI, EmailURI, DocumentURI, ...),
// so a document reference cannot be passed where a person reference is
// required. A typed URI names a resource; it never owns it.
//
// # Queries and pagination
//
// Collection endpoints return one page per request. QueryParams expresses
// filters (exact match, substring match, time bounds) and paging, and the
// List methods return a PageIterator that follows the server's continuation
// cursor lazily, one page ahead of the consumer at most:
//
//	it := cli.Persons().List(ctx, datatracker.NewQueryParams().WithContains("name", "Perkins"))
//	for it.HasNext() {
//	  person, err := it.Next()
//	  if errors.Is(err, datatracker.ErrNoMoreItems) { break }
//	  if err != nil { log.Fatal(err) }
//	  _ = person
//	}
//
// Iterators are single-pass and terminate permanently after an error.
//
// # Errors
//
// Every failure is either a NotFoundError (the request completed without a
// 2xx status, or a lookup matched nothing) or a TransportError (the request
// could not be completed, or the body failed to decode). Use IsNotFound and
// IsTransport to classify wrapped errors. Nothing is retried internally.
package datatracker
