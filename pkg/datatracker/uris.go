package datatracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidResourceURI indicates a path that does not belong to the
// resource kind it was parsed as.
var ErrInvalidResourceURI = errors.New("invalid resource URI")

// API path prefixes for each resource kind. A non-empty typed URI always
// starts with the prefix of its kind.
const (
	PersonURIPrefix           = "/api/v1/person/person/"
	HistoricalPersonURIPrefix = "/api/v1/person/historicalperson/"
	PersonAliasURIPrefix      = "/api/v1/person/alias/"
	EmailURIPrefix            = "/api/v1/person/email/"
	HistoricalEmailURIPrefix  = "/api/v1/person/historicalemail/"
	DocumentURIPrefix         = "/api/v1/doc/document/"
	SubmissionURIPrefix       = "/api/v1/submit/submission/"
	DocStateURIPrefix         = "/api/v1/doc/state/"
	DocStateTypeURIPrefix     = "/api/v1/doc/statetype/"
	GroupURIPrefix            = "/api/v1/group/group/"
	GroupTypeURIPrefix        = "/api/v1/name/grouptypename/"
	GroupStateURIPrefix       = "/api/v1/name/groupstatename/"
)

// PersonURI references a person resource by location.
type PersonURI string

// HistoricalPersonURI references a historical snapshot of a person.
type HistoricalPersonURI string

// PersonAliasURI references a person alias resource.
type PersonAliasURI string

// EmailURI references an email address resource.
type EmailURI string

// HistoricalEmailURI references a historical snapshot of an email address.
type HistoricalEmailURI string

// DocumentURI references a document resource.
type DocumentURI string

// SubmissionURI references a document submission resource.
type SubmissionURI string

// DocStateURI references a document state resource.
type DocStateURI string

// DocStateTypeURI references a document state type resource.
type DocStateTypeURI string

// GroupURI references a group resource.
type GroupURI string

// GroupTypeURI references a group type resource.
type GroupTypeURI string

// GroupStateURI references a group state resource.
type GroupStateURI string

func parseURI(path, prefix, kind string) error {
	if path == "" {
		return nil
	}

	if !strings.HasPrefix(path, prefix) {
		return fmt.Errorf("%w: %q is not a %s URI (expected prefix %q)", ErrInvalidResourceURI, path, kind, prefix)
	}

	return nil
}

// uriTail returns the last path segment of a resource URI, typically the
// numeric identifier or unique key of the referenced resource.
func uriTail(path string) string {
	trimmed := strings.TrimSuffix(path, "/")

	idx := strings.LastIndexByte(trimmed, '/')
	if idx < 0 {
		return trimmed
	}

	return trimmed[idx+1:]
}

func uriID(path string) (int64, error) {
	id, err := strconv.ParseInt(uriTail(path), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no numeric identifier", ErrInvalidResourceURI, path)
	}

	return id, nil
}

// ParsePersonURI validates path as a person URI. No I/O is performed.
func ParsePersonURI(path string) (PersonURI, error) {
	if err := parseURI(path, PersonURIPrefix, "person"); err != nil {
		return "", err
	}

	return PersonURI(path), nil
}

// PersonURIForID builds the canonical URI of the person with the given id.
func PersonURIForID(id int64) PersonURI {
	return PersonURI(fmt.Sprintf("%s%d/", PersonURIPrefix, id))
}

func (u PersonURI) String() string { return string(u) }

// ID extracts the numeric person identifier from the URI path.
func (u PersonURI) ID() (int64, error) { return uriID(string(u)) }

// ParseEmailURI validates path as an email URI. No I/O is performed.
func ParseEmailURI(path string) (EmailURI, error) {
	if err := parseURI(path, EmailURIPrefix, "email"); err != nil {
		return "", err
	}

	return EmailURI(path), nil
}

// EmailURIForAddress builds the canonical URI of the given email address.
func EmailURIForAddress(address string) EmailURI {
	return EmailURI(EmailURIPrefix + address + "/")
}

func (u EmailURI) String() string { return string(u) }

// Address extracts the email address from the URI path.
func (u EmailURI) Address() string { return uriTail(string(u)) }

// ParseDocumentURI validates path as a document URI. No I/O is performed.
func ParseDocumentURI(path string) (DocumentURI, error) {
	if err := parseURI(path, DocumentURIPrefix, "document"); err != nil {
		return "", err
	}

	return DocumentURI(path), nil
}

// DocumentURIForName builds the canonical URI of the named document.
func DocumentURIForName(name string) DocumentURI {
	return DocumentURI(DocumentURIPrefix + name + "/")
}

func (u DocumentURI) String() string { return string(u) }

// Name extracts the document name from the URI path.
func (u DocumentURI) Name() string { return uriTail(string(u)) }

// ParseGroupURI validates path as a group URI. No I/O is performed.
func ParseGroupURI(path string) (GroupURI, error) {
	if err := parseURI(path, GroupURIPrefix, "group"); err != nil {
		return "", err
	}

	return GroupURI(path), nil
}

func (u GroupURI) String() string { return string(u) }

// ID extracts the numeric group identifier from the URI path.
func (u GroupURI) ID() (int64, error) { return uriID(string(u)) }

// ParseDocStateURI validates path as a document state URI.
func ParseDocStateURI(path string) (DocStateURI, error) {
	if err := parseURI(path, DocStateURIPrefix, "document state"); err != nil {
		return "", err
	}

	return DocStateURI(path), nil
}

func (u DocStateURI) String() string { return string(u) }

// ParseDocStateTypeURI validates path as a document state type URI.
func ParseDocStateTypeURI(path string) (DocStateTypeURI, error) {
	if err := parseURI(path, DocStateTypeURIPrefix, "document state type"); err != nil {
		return "", err
	}

	return DocStateTypeURI(path), nil
}

func (u DocStateTypeURI) String() string { return string(u) }

// ParseGroupTypeURI validates path as a group type URI.
func ParseGroupTypeURI(path string) (GroupTypeURI, error) {
	if err := parseURI(path, GroupTypeURIPrefix, "group type"); err != nil {
		return "", err
	}

	return GroupTypeURI(path), nil
}

func (u GroupTypeURI) String() string { return string(u) }

// ParseGroupStateURI validates path as a group state URI.
func ParseGroupStateURI(path string) (GroupStateURI, error) {
	if err := parseURI(path, GroupStateURIPrefix, "group state"); err != nil {
		return "", err
	}

	return GroupStateURI(path), nil
}

func (u GroupStateURI) String() string { return string(u) }

func (u HistoricalPersonURI) String() string { return string(u) }

func (u HistoricalEmailURI) String() string { return string(u) }

func (u PersonAliasURI) String() string { return string(u) }

func (u SubmissionURI) String() string { return string(u) }
