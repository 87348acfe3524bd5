package auction

// Status is the lifecycle state of an auction. Apart from the manual closed
// override, transitions only flow pending -> active -> ended.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusEnded   Status = "ended"
	StatusClosed  Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusEnded || s == StatusClosed
}

// Result is the terminal fulfillment outcome recorded on an ended auction.
type Result string

const (
	ResultSold   Result = "sold"
	ResultUnsold Result = "unsold"
)
