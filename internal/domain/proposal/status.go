package proposal

// Status represents the lifecycle state of a Proposal. Only StatusPending
// accepts votes; every other status is terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusExpired
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// VoteKind is the direction of a single vote.
type VoteKind string

const (
	VoteApprove VoteKind = "approve"
	VoteReject  VoteKind = "reject"
)

// IsValid returns true if the kind is one of the defined constants.
func (k VoteKind) IsValid() bool {
	return k == VoteApprove || k == VoteReject
}

// String implements fmt.Stringer.
func (k VoteKind) String() string {
	return string(k)
}
