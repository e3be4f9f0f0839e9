// Package age holds the child-age signal: which starting difficulty a
// declared age maps to, and how far numeric families may count.
package age

const (
	MinAge = 3
	MaxAge = 7
)

// Valid reports whether age is a supported declared age.
func Valid(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// StartingDifficulty maps a declared age to the difficulty a fresh
// activity starts at. Returns 0 for unsupported ages.
func StartingDifficulty(age int) int {
	switch {
	case age == 3 || age == 4:
		return 1
	case age == 5 || age == 6:
		return 2
	case age == 7:
		return 3
	default:
		return 0
	}
}

// NumberCap returns the largest number an age-adaptive family may use for
// a child of the given age.
func NumberCap(age int) (int, bool) {
	switch age {
	case 3:
		return 5, true
	case 4:
		return 10, true
	case 5:
		return 15, true
	case 6, 7:
		return 20, true
	default:
		return 0, false
	}
}

// Signal reports the age-derived numeric ceiling. ok is false when no
// age is known and no clamp applies.
type Signal interface {
	NumberCap() (limit int, ok bool)
}

// Service tracks the current child age and notifies listeners when it
// changes.
type Service struct {
	age       int
	listeners []func(startingDifficulty int)
}

// NewService creates a Service with no age set.
func NewService() *Service {
	return &Service{}
}

// Age returns the current age, or 0 if none has been set.
func (s *Service) Age() int {
	return s.age
}

// SetAge updates the age. Unsupported ages are ignored and leave the
// state untouched. Returns true when the age was applied.
func (s *Service) SetAge(age int) bool {
	if !Valid(age) {
		return false
	}
	changed := s.age != age
	s.age = age
	if changed {
		level := StartingDifficulty(age)
		for _, fn := range s.listeners {
			fn(level)
		}
	}
	return true
}

// OnChange registers fn to be called with the new starting difficulty
// whenever the age changes.
func (s *Service) OnChange(fn func(startingDifficulty int)) {
	s.listeners = append(s.listeners, fn)
}

// NumberCap implements Signal.
func (s *Service) NumberCap() (int, bool) {
	return NumberCap(s.age)
}
