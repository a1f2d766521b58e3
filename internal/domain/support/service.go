package support

import "context"

type SupportService interface {
	ListRequests(ctx context.Context, filter Filter) ([]SupportRequest, error)
}
