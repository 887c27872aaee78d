package datatracker

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the production Datatracker instance.
const DefaultAPIEndpoint = "https://datatracker.ietf.org"

// PersonsClient provides read access to person resources.
type PersonsClient interface {
	// Get fetches the person identified by uri.
	Get(ctx context.Context, uri PersonURI) (*Person, error)
	// GetByID fetches the person with the given numeric identifier.
	GetByID(ctx context.Context, id int64) (*Person, error)
	// GetByEmail resolves address to its owning person: the email entity
	// is fetched first, then the person it references. The failure of the
	// first step prevents the second from being attempted.
	GetByEmail(ctx context.Context, address string) (*Person, error)
	// List iterates over persons matching params.
	List(ctx context.Context, params *QueryParams) *PageIterator[Person]
	// ListAliases iterates over the aliases recorded for person.
	ListAliases(ctx context.Context, person PersonURI) *PageIterator[PersonAlias]
	// History iterates over historical person snapshots matching params.
	History(ctx context.Context, params *QueryParams) *PageIterator[HistoricalPerson]
}

// EmailsClient provides read access to email address resources.
type EmailsClient interface {
	// Get fetches the email entity for an address.
	Get(ctx context.Context, address string) (*Email, error)
	// GetByURI fetches the email entity identified by uri.
	GetByURI(ctx context.Context, uri EmailURI) (*Email, error)
	// ForPerson iterates over the addresses belonging to person.
	ForPerson(ctx context.Context, person PersonURI) *PageIterator[Email]
	// History iterates over historical email snapshots matching params.
	History(ctx context.Context, params *QueryParams) *PageIterator[HistoricalEmail]
}

// DocumentsClient provides read access to document resources.
type DocumentsClient interface {
	// Get fetches the document identified by uri.
	Get(ctx context.Context, uri DocumentURI) (*Document, error)
	// GetByName fetches the document with the given name.
	GetByName(ctx context.Context, name string) (*Document, error)
	// List iterates over documents matching params.
	List(ctx context.Context, params *QueryParams) *PageIterator[Document]
	// GetState fetches the document state identified by uri.
	GetState(ctx context.Context, uri DocStateURI) (*DocState, error)
	// ListStates iterates over document states matching params.
	ListStates(ctx context.Context, params *QueryParams) *PageIterator[DocState]
	// GetStateType fetches the document state type identified by uri.
	GetStateType(ctx context.Context, uri DocStateTypeURI) (*DocStateType, error)
}

// GroupsClient provides read access to group resources.
type GroupsClient interface {
	// Get fetches the group identified by uri.
	Get(ctx context.Context, uri GroupURI) (*Group, error)
	// GetByAcronym fetches the group with the given acronym.
	GetByAcronym(ctx context.Context, acronym string) (*Group, error)
	// List iterates over groups matching params.
	List(ctx context.Context, params *QueryParams) *PageIterator[Group]
	// GetState fetches the group state identified by uri.
	GetState(ctx context.Context, uri GroupStateURI) (*GroupState, error)
	// GetType fetches the group type identified by uri.
	GetType(ctx context.Context, uri GroupTypeURI) (*GroupType, error)
}

// Client provides access to the resource-family clients. A Client is safe
// for concurrent use; iterators derived from it are not.
type Client interface {
	Persons() PersonsClient
	Emails() EmailsClient
	Documents() DocumentsClient
	Groups() GroupsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
type Config struct {
	// APIEndpoint is the base URL of the Datatracker instance. If empty,
	// DefaultAPIEndpoint is used.
	APIEndpoint string

	// HTTPTimeout is the per-request timeout of the underlying transport.
	// Zero means no client-side timeout; use context deadlines instead.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries for
	// transient failures. Zero disables retries, the default: a failed
	// page fetch surfaces exactly one error to the caller.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
