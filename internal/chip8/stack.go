package chip8

// DefaultStackCapacity is the default number of return addresses the call stack holds.
const DefaultStackCapacity = 100

// Stack is the bounded call stack holding subroutine return addresses.
type Stack struct {
	entries  []uint16
	capacity int
}

// NewStack returns a new call stack that can hold capacity return addresses.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultStackCapacity
	}
	return &Stack{
		entries:  make([]uint16, 0, capacity),
		capacity: capacity,
	}
}

// Push adds a return address, it fails if the stack is full.
func (s *Stack) Push(address uint16) error {
	if len(s.entries) == s.capacity {
		return &StackFault{
			Err:      ErrStackOverflow,
			Depth:    len(s.entries),
			Address:  address,
			Capacity: s.capacity,
		}
	}
	s.entries = append(s.entries, address)
	return nil
}

// Pop removes and returns the most recent return address, it fails if the
// stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if len(s.entries) == 0 {
		return 0, &StackFault{
			Err:      ErrStackUnderflow,
			Capacity: s.capacity,
		}
	}
	last := len(s.entries) - 1
	address := s.entries[last]
	s.entries = s.entries[:last]
	return address, nil
}

// Len returns the number of return addresses on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Capacity returns the maximum number of return addresses.
func (s *Stack) Capacity() int {
	return s.capacity
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}
