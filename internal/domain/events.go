package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryLoaded     EventType = "DirectoryLoaded"
	EventDirectoryLoadFailed EventType = "DirectoryLoadFailed"
	EventRecordSelected      EventType = "RecordSelected"
	EventConfigLoaded        EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryLoadedEvent is emitted once the record source has been read and parsed
type DirectoryLoadedEvent struct {
	Source  string
	Records []OrganizationRecord
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// DirectoryLoadFailedEvent is emitted when the record source could not be read or parsed
type DirectoryLoadFailedEvent struct {
	Source string
	Err    error
}

func (e DirectoryLoadFailedEvent) Type() EventType { return EventDirectoryLoadFailed }

// RecordSelectedEvent is emitted when the user confirms a record, explicitly or by exact match
type RecordSelectedEvent struct {
	Name     string
	Implicit bool
}

func (e RecordSelectedEvent) Type() EventType { return EventRecordSelected }

// ConfigLoadedEvent is emitted after the configuration file has been read
type ConfigLoadedEvent struct {
	Path       string
	DataSource string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
