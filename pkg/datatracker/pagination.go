package datatracker

import (
	"context"
	"errors"
	"net/url"
)

// PageLister fetches one page of a collection. path is a server-relative
// path which may already carry its own query string (continuation cursors
// do); query holds additional parameters for the initial request.
type PageLister[T any] interface {
	ListPage(ctx context.Context, path string, query url.Values) (*ListResponse[T], error)
}

// PageIterator is a lazy, forward-only, non-restartable sequence over a
// paginated collection. It buffers one page at a time and follows the
// server-supplied next cursor on demand; no request is issued until the
// first call to Next. It is not safe for concurrent use, and it holds a
// non-owning reference to the lister, which must outlive it.
type PageIterator[T any] struct {
	ctx    context.Context
	lister PageLister[T]
	path   string
	query  url.Values

	buffer  []T
	pos     int
	next    *string
	started bool
	done    bool
}

// NewPageIterator creates an iterator over the collection at path, seeded
// with the given initial query parameters.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], path string, query url.Values) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		path:   path,
		query:  query,
	}
}

// Next produces the next item in server order, fetching the following page
// when the buffered one is exhausted. Once the collection is exhausted it
// returns ErrNoMoreItems. A page fetch failure is returned exactly once;
// every call after that returns ErrNoMoreItems, and no further requests
// are issued.
func (it *PageIterator[T]) Next() (*T, error) {
	for {
		if it.pos < len(it.buffer) {
			item := &it.buffer[it.pos]
			it.pos++

			return item, nil
		}

		if it.done {
			return nil, ErrNoMoreItems
		}

		var (
			page *ListResponse[T]
			err  error
		)

		switch {
		case !it.started:
			it.started = true
			page, err = it.lister.ListPage(it.ctx, it.path, it.query)
		case it.next != nil:
			page, err = it.lister.ListPage(it.ctx, *it.next, nil)
		default:
			it.done = true

			continue
		}

		if err != nil {
			it.done = true

			return nil, err
		}

		it.buffer = page.Objects
		it.pos = 0
		it.next = page.Meta.Next
	}
}

// HasNext reports whether another item may be available. It never issues a
// request: before the first fetch it is optimistic, afterwards it reflects
// the buffered page and the presence of a next cursor.
func (it *PageIterator[T]) HasNext() bool {
	if it.pos < len(it.buffer) {
		return true
	}

	if it.done {
		return false
	}

	return !it.started || it.next != nil
}

// All drains the iterator and returns the remaining items in server order.
// A fetch failure aborts the drain and is returned as-is.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return items, nil
		}

		if err != nil {
			return nil, err
		}

		items = append(items, *item)
	}
}

// ForEach invokes fn for each remaining item in server order, stopping at
// the first fetch or callback error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := fn(*item); err != nil {
			return err
		}
	}
}
