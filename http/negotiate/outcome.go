package negotiate

// An Outcome is how negotiating a request's representation ended.
type Outcome int

const (
	// Handled means a producer responded.
	Handled Outcome = iota + 1
	// Deferred means the request was handed to the next matching route.
	Deferred
	// Rejected means no registered media type was acceptable.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Handled:
		return "handled"
	case Deferred:
		return "deferred"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
