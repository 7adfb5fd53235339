package event

import "context"

// EventService is the ledger surface: manual entries, filtered reads, and
// rare administrative deletes. Reconciler-generated entries bypass this and
// go straight through the repository inside the reconcile transaction.
type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	ListEvents(ctx context.Context, filter EventFilter) (ListEventsResponse, error)
	DeleteEvent(ctx context.Context, id string) error
}
