package support

// SupportRequest is a support_requests row keyed by column name. Columns beyond
// id, request_type and status pass through untouched.
type SupportRequest map[string]any

// AllStatus is the status value that disables status filtering.
const AllStatus = "All Status"

type Filter struct {
	Type   string
	Status string
}
