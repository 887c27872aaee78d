package datatracker

// Person represents a person registered in the Datatracker.
type Person struct {
	ID            int64     `json:"id"              yaml:"id"`
	ResourceURI   PersonURI `json:"resource_uri"    yaml:"resource_uri"`
	Name          string    `json:"name"            yaml:"name"`
	NameFromDraft *string   `json:"name_from_draft" yaml:"name_from_draft"`
	Biography     string    `json:"biography"       yaml:"biography"`
	ASCII         string    `json:"ascii"           yaml:"ascii"`
	ASCIIShort    *string   `json:"ascii_short"     yaml:"ascii_short"`
	Time          Time      `json:"time"            yaml:"time"`
	Photo         *string   `json:"photo"           yaml:"photo"`
	PhotoThumb    *string   `json:"photo_thumb"     yaml:"photo_thumb"`
	User          *string   `json:"user"            yaml:"user"`
	Consent       *bool     `json:"consent"         yaml:"consent"`
}

// HistoricalPerson represents one entry in a person's change history.
type HistoricalPerson struct {
	ID            int64               `json:"id"              yaml:"id"`
	ResourceURI   HistoricalPersonURI `json:"resource_uri"    yaml:"resource_uri"`
	Name          string              `json:"name"            yaml:"name"`
	NameFromDraft *string             `json:"name_from_draft" yaml:"name_from_draft"`
	Biography     string              `json:"biography"       yaml:"biography"`
	ASCII         string              `json:"ascii"           yaml:"ascii"`
	ASCIIShort    *string             `json:"ascii_short"     yaml:"ascii_short"`
	Time          Time                `json:"time"            yaml:"time"`
	Photo         *string             `json:"photo"           yaml:"photo"`
	PhotoThumb    *string             `json:"photo_thumb"     yaml:"photo_thumb"`
	User          *string             `json:"user"            yaml:"user"`
	Consent       *bool               `json:"consent"         yaml:"consent"`

	HistoryChangeReason *string `json:"history_change_reason" yaml:"history_change_reason"`
	HistoryUser         *string `json:"history_user"          yaml:"history_user"`
	HistoryType         string  `json:"history_type"          yaml:"history_type"`
	HistoryID           int64   `json:"history_id"            yaml:"history_id"`
	HistoryDate         Time    `json:"history_date"          yaml:"history_date"`
}

// PersonAlias represents an alternative name recorded for a person.
type PersonAlias struct {
	ID          int64          `json:"id"           yaml:"id"`
	ResourceURI PersonAliasURI `json:"resource_uri" yaml:"resource_uri"`
	Person      PersonURI      `json:"person"       yaml:"person"`
	Name        string         `json:"name"         yaml:"name"`
}

// Email represents a mapping from an email address to a person.
type Email struct {
	ResourceURI EmailURI  `json:"resource_uri" yaml:"resource_uri"`
	Address     string    `json:"address"      yaml:"address"`
	Person      PersonURI `json:"person"       yaml:"person"`
	Time        Time      `json:"time"         yaml:"time"`
	Origin      string    `json:"origin"       yaml:"origin"`
	Primary     bool      `json:"primary"      yaml:"primary"`
	Active      bool      `json:"active"       yaml:"active"`
}

// HistoricalEmail represents one entry in an email address's change history.
type HistoricalEmail struct {
	ResourceURI HistoricalEmailURI `json:"resource_uri" yaml:"resource_uri"`
	Address     string             `json:"address"      yaml:"address"`
	Person      PersonURI          `json:"person"       yaml:"person"`
	Time        Time               `json:"time"         yaml:"time"`
	Origin      string             `json:"origin"       yaml:"origin"`
	Primary     bool               `json:"primary"      yaml:"primary"`
	Active      bool               `json:"active"       yaml:"active"`

	HistoryChangeReason *string `json:"history_change_reason" yaml:"history_change_reason"`
	HistoryUser         *string `json:"history_user"          yaml:"history_user"`
	HistoryType         string  `json:"history_type"          yaml:"history_type"`
	HistoryID           int64   `json:"history_id"            yaml:"history_id"`
	HistoryDate         Time    `json:"history_date"          yaml:"history_date"`
}

// Document represents a document tracked by the Datatracker, such as an
// Internet-Draft or an RFC.
type Document struct {
	ID               int64           `json:"id"                 yaml:"id"`
	ResourceURI      DocumentURI     `json:"resource_uri"       yaml:"resource_uri"`
	Name             string          `json:"name"               yaml:"name"`
	Title            string          `json:"title"              yaml:"title"`
	Pages            *int64          `json:"pages"              yaml:"pages"`
	Words            *int64          `json:"words"              yaml:"words"`
	Time             Time            `json:"time"               yaml:"time"`
	Notify           string          `json:"notify"             yaml:"notify"`
	Expires          Time            `json:"expires"            yaml:"expires"`
	Type             string          `json:"type"               yaml:"type"`
	RFC              *int64          `json:"rfc"                yaml:"rfc"`
	Rev              string          `json:"rev"                yaml:"rev"`
	Abstract         string          `json:"abstract"           yaml:"abstract"`
	InternalComments string          `json:"internal_comments"  yaml:"internal_comments"`
	Order            int64           `json:"order"              yaml:"order"`
	Note             string          `json:"note"               yaml:"note"`
	AD               *PersonURI      `json:"ad"                 yaml:"ad"`
	Shepherd         *EmailURI       `json:"shepherd"           yaml:"shepherd"`
	Group            *GroupURI       `json:"group"              yaml:"group"`
	Stream           *string         `json:"stream"             yaml:"stream"`
	StdLevel         *string         `json:"std_level"          yaml:"std_level"`
	IntendedStdLevel *string         `json:"intended_std_level" yaml:"intended_std_level"`
	States           []DocStateURI   `json:"states"             yaml:"states"`
	Submissions      []SubmissionURI `json:"submissions"        yaml:"submissions"`
	Tags             []string        `json:"tags"               yaml:"tags"`
	UploadedFilename string          `json:"uploaded_filename"  yaml:"uploaded_filename"`
	ExternalURL      string          `json:"external_url"       yaml:"external_url"`
}

// Submission represents a single submission of a document revision.
type Submission struct {
	ID          int64         `json:"id"           yaml:"id"`
	ResourceURI SubmissionURI `json:"resource_uri" yaml:"resource_uri"`
	Name        string        `json:"name"         yaml:"name"`
	Rev         string        `json:"rev"          yaml:"rev"`
}

// DocState represents a state a document can be in.
type DocState struct {
	ID          int64           `json:"id"           yaml:"id"`
	ResourceURI DocStateURI     `json:"resource_uri" yaml:"resource_uri"`
	Name        string          `json:"name"         yaml:"name"`
	Desc        string          `json:"desc"         yaml:"desc"`
	Slug        string          `json:"slug"         yaml:"slug"`
	NextStates  []DocStateURI   `json:"next_states"  yaml:"next_states"`
	Used        bool            `json:"used"         yaml:"used"`
	Order       int64           `json:"order"        yaml:"order"`
	Type        DocStateTypeURI `json:"type"         yaml:"type"`
}

// DocStateType represents a class of document states.
type DocStateType struct {
	ResourceURI DocStateTypeURI `json:"resource_uri" yaml:"resource_uri"`
	Slug        string          `json:"slug"         yaml:"slug"`
	Label       string          `json:"label"        yaml:"label"`
}

// Group represents a group, such as an IETF working group.
type Group struct {
	ID            int64         `json:"id"             yaml:"id"`
	ResourceURI   GroupURI      `json:"resource_uri"   yaml:"resource_uri"`
	Acronym       string        `json:"acronym"        yaml:"acronym"`
	Name          string        `json:"name"           yaml:"name"`
	Description   string        `json:"description"    yaml:"description"`
	Charter       DocumentURI   `json:"charter"        yaml:"charter"`
	AD            *PersonURI    `json:"ad"             yaml:"ad"`
	Time          Time          `json:"time"           yaml:"time"`
	Type          GroupTypeURI  `json:"type"           yaml:"type"`
	Comments      string        `json:"comments"       yaml:"comments"`
	Parent        GroupURI      `json:"parent"         yaml:"parent"`
	State         GroupStateURI `json:"state"          yaml:"state"`
	UnusedStates  []DocStateURI `json:"unused_states"  yaml:"unused_states"`
	UnusedTags    []string      `json:"unused_tags"    yaml:"unused_tags"`
	ListEmail     string        `json:"list_email"     yaml:"list_email"`
	ListSubscribe string        `json:"list_subscribe" yaml:"list_subscribe"`
	ListArchive   string        `json:"list_archive"   yaml:"list_archive"`
}

// GroupType represents a kind of group.
type GroupType struct {
	ResourceURI GroupTypeURI `json:"resource_uri" yaml:"resource_uri"`
	Name        string       `json:"name"         yaml:"name"`
	VerboseName string       `json:"verbose_name" yaml:"verbose_name"`
	Slug        string       `json:"slug"         yaml:"slug"`
	Desc        string       `json:"desc"         yaml:"desc"`
	Used        bool         `json:"used"         yaml:"used"`
	Order       int64        `json:"order"        yaml:"order"`
}

// GroupState represents a state a group can be in.
type GroupState struct {
	ResourceURI GroupStateURI `json:"resource_uri" yaml:"resource_uri"`
	Desc        string        `json:"desc"         yaml:"desc"`
	Name        string        `json:"name"         yaml:"name"`
	Slug        string        `json:"slug"         yaml:"slug"`
	Used        bool          `json:"used"         yaml:"used"`
	Order       int64         `json:"order"        yaml:"order"`
}
