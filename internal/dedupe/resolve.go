package dedupe

import (
	"fmt"

	"bibmerge/internal/bib"
	"bibmerge/internal/render"
)

// Resolution says which record of a duplicate pair survives.
type Resolution int

const (
	// KeepIncumbent keeps the record already in the target.
	KeepIncumbent Resolution = iota
	// KeepCandidate replaces the incumbent with the incoming record.
	KeepCandidate
	// KeepBoth keeps both records.
	KeepBoth
)

// String returns a human-readable name for the resolution.
func (r Resolution) String() string {
	switch r {
	case KeepIncumbent:
		return "keep-incumbent"
	case KeepCandidate:
		return "keep-candidate"
	case KeepBoth:
		return "keep-both"
	default:
		return "unknown"
	}
}

// Resolver decides the fate of a duplicate pair.
type Resolver interface {
	Resolve(incumbent, candidate *bib.Record) (Resolution, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(incumbent, candidate *bib.Record) (Resolution, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(incumbent, candidate *bib.Record) (Resolution, error) {
	return f(incumbent, candidate)
}

// Chooser asks the user to pick between two rendered records. It returns 1
// to keep the first, 2 to keep the second, and 3 to keep both.
type Chooser interface {
	Choose(first, second string) (int, error)
}

// Choices offered by a Chooser.
const (
	ChoiceFirst  = 1
	ChoiceSecond = 2
	ChoiceBoth   = 3
)

// Policy is the standard Resolver. In silent mode it always keeps the
// incumbent; otherwise it delegates to its Chooser.
type Policy struct {
	silent   bool
	chooser  Chooser
	renderer render.Renderer
}

// NewPolicy builds a Policy from settings. chooser may be nil when
// s.Silent is true.
func NewPolicy(s Settings, chooser Chooser) *Policy {
	return &Policy{
		silent:   s.Silent,
		chooser:  chooser,
		renderer: render.ForFormat(s.Format),
	}
}

// Resolve implements Resolver.
func (p *Policy) Resolve(incumbent, candidate *bib.Record) (Resolution, error) {
	if p.silent {
		return KeepIncumbent, nil
	}
	if p.chooser == nil {
		return KeepIncumbent, fmt.Errorf("resolve %s/%s: no chooser configured for interactive mode", incumbent.Key, candidate.Key)
	}

	choice, err := p.chooser.Choose(p.renderer.Render(incumbent), p.renderer.Render(candidate))
	if err != nil {
		return KeepIncumbent, err
	}
	switch choice {
	case ChoiceFirst:
		return KeepIncumbent, nil
	case ChoiceSecond:
		return KeepCandidate, nil
	case ChoiceBoth:
		return KeepBoth, nil
	}
	return KeepIncumbent, fmt.Errorf("resolve %s/%s: chooser returned invalid choice %d", incumbent.Key, candidate.Key, choice)
}
