package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchIssued      EventType = "SearchIssued"
	EventSearchApplied     EventType = "SearchApplied"
	EventForecastIssued    EventType = "ForecastIssued"
	EventForecastApplied   EventType = "ForecastApplied"
	EventResponseDiscarded EventType = "ResponseDiscarded"
	EventError             EventType = "Error"
)

// Channel names a logical request channel with its own sequence numbers
type Channel string

const (
	ChannelSearch   Channel = "search"
	ChannelForecast Channel = "forecast"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchIssuedEvent is emitted when a settled search term is sent to the API
type SearchIssuedEvent struct {
	Seq   uint64
	Query string
}

func (e SearchIssuedEvent) Type() EventType { return EventSearchIssued }

// SearchAppliedEvent is emitted when a search response replaces the candidate list
type SearchAppliedEvent struct {
	Seq   uint64
	Count int
}

func (e SearchAppliedEvent) Type() EventType { return EventSearchApplied }

// ForecastIssuedEvent is emitted when a forecast query is sent to the API
type ForecastIssuedEvent struct {
	Seq  uint64
	City string
	Days int
}

func (e ForecastIssuedEvent) Type() EventType { return EventForecastIssued }

// ForecastAppliedEvent is emitted when a forecast response replaces the forecast state
type ForecastAppliedEvent struct {
	Seq      uint64
	Location string
}

func (e ForecastAppliedEvent) Type() EventType { return EventForecastApplied }

// ResponseDiscardedEvent is emitted when a response arrives for a superseded request
type ResponseDiscardedEvent struct {
	Channel Channel
	Seq     uint64
	Latest  uint64
}

func (e ResponseDiscardedEvent) Type() EventType { return EventResponseDiscarded }

// ErrorEvent is emitted when a request fails
type ErrorEvent struct {
	Channel Channel
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
