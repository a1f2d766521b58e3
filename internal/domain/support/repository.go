package support

import "context"

type SupportRequestRepository interface {
	// List applies every non-empty filter field as an exact match.
	List(ctx context.Context, filter Filter) ([]SupportRequest, error)
}
