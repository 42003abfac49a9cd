// Package questions holds the ordered question registry that drives the
// proposal interview, and the answer values collected for it.
package questions

import (
	"errors"
	"fmt"
)

// NumPhases is the number of interview phases.
const NumPhases = 7

// Kind is the input affordance a question expects.
type Kind int

const (
	FreeText Kind = iota
	SingleSelect
	MultiSelect
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case FreeText:
		return "text"
	case SingleSelect:
		return "single"
	case MultiSelect:
		return "multi"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsSelect reports whether the kind offers a fixed option list.
func (k Kind) IsSelect() bool {
	return k == SingleSelect || k == MultiSelect
}

// Question is one immutable entry in the registry.
type Question struct {
	Phase     int
	Key       string
	Prompt    string
	Kind      Kind
	Options   []string
	Summarize bool // request an AI phase summary once answered
	Final     bool
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// ErrInvalidRegistry is wrapped by every error returned from Validate.
var ErrInvalidRegistry = errors.New("invalid question registry")

// Registry is an ordered, read-only list of questions.
type Registry struct {
	questions []Question
	index     map[string]int
}

// New validates qs and returns a Registry holding a private copy of it.
func New(qs []Question) (*Registry, error) {
	if err := Validate(qs); err != nil {
		return nil, err
	}

	r := &Registry{
		questions: make([]Question, len(qs)),
		index:     make(map[string]int, len(qs)),
	}
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		r.questions[i] = q
		r.index[q.Key] = i
	}
	return r, nil
}

// MustNew is like New but panics on an invalid list. It is meant for
// package-level registries whose contents are fixed at compile time.
func MustNew(qs []Question) *Registry {
	r, err := New(qs)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks the registry invariants: unique non-empty keys, phases in
// 1..NumPhases and non-decreasing, options present iff the kind is a select
// kind and unique within a question, and Final set on exactly the last entry.
func Validate(qs []Question) error {
	seen := make(map[string]int, len(qs))
	prevPhase := 0

	for i, q := range qs {
		if q.Key == "" {
			return fmt.Errorf("%w: question %d has no key", ErrInvalidRegistry, i)
		}
		if j, dup := seen[q.Key]; dup {
			return fmt.Errorf("%w: key %q used by questions %d and %d", ErrInvalidRegistry, q.Key, j, i)
		}
		seen[q.Key] = i

		if q.Phase < 1 || q.Phase > NumPhases {
			return fmt.Errorf("%w: %s: phase %d out of range 1..%d", ErrInvalidRegistry, q.Key, q.Phase, NumPhases)
		}
		if q.Phase < prevPhase {
			return fmt.Errorf("%w: %s: phase %d follows phase %d", ErrInvalidRegistry, q.Key, q.Phase, prevPhase)
		}
		prevPhase = q.Phase

		switch {
		case q.Kind.IsSelect() && len(q.Options) == 0:
			return fmt.Errorf("%w: %s: %s question has no options", ErrInvalidRegistry, q.Key, q.Kind)
		case !q.Kind.IsSelect() && len(q.Options) > 0:
			return fmt.Errorf("%w: %s: %s question must not have options", ErrInvalidRegistry, q.Key, q.Kind)
		}
		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o] {
				return fmt.Errorf("%w: %s: duplicate option %q", ErrInvalidRegistry, q.Key, o)
			}
			opts[o] = true
		}

		if q.Final && i != len(qs)-1 {
			return fmt.Errorf("%w: %s: only the last question may be final", ErrInvalidRegistry, q.Key)
		}
	}
	if n := len(qs); n > 0 && !qs[n-1].Final {
		return fmt.Errorf("%w: %s: the last question must be final", ErrInvalidRegistry, qs[n-1].Key)
	}
	return nil
}

// Len returns the number of questions.
func (r *Registry) Len() int {
	return len(r.questions)
}

// At returns the question at index i. It panics if i is out of range.
func (r *Registry) At(i int) Question {
	q := r.questions[i]
	q.Options = append([]string(nil), q.Options...)
	return q
}

// Lookup returns the question with the given key.
func (r *Registry) Lookup(key string) (Question, bool) {
	i, ok := r.index[key]
	if !ok {
		return Question{}, false
	}
	return r.At(i), true
}

// Index returns the registry position of key, or -1.
func (r *Registry) Index(key string) int {
	if i, ok := r.index[key]; ok {
		return i
	}
	return -1
}

// All returns a copy of every question in registry order.
func (r *Registry) All() []Question {
	out := make([]Question, len(r.questions))
	for i := range r.questions {
		out[i] = r.At(i)
	}
	return out
}

// InPhase returns the questions of one phase in registry order.
func (r *Registry) InPhase(phase int) []Question {
	var out []Question
	for i, q := range r.questions {
		if q.Phase == phase {
			out = append(out, r.At(i))
		}
	}
	return out
}
