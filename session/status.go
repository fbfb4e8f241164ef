package session

import "fmt"

// Status is the closed set of table states. All transitions go through
// Session so call sites never compare raw strings.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusOccupied  Status = "occupied"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusReserved, StatusOccupied:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, s)
}

func (s Status) String() string { return string(s) }
