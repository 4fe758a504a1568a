package models

import apperrors "github.com/axellelanca/portfolio/internal/errors"

// Action is a parsed tracking signal. Each kind carries only the payload that
// is meaningful for it: project kinds carry the target identifier, the other
// kinds carry free-text details.
type Action interface {
	Kind() ActionKind
}

// ProjectAction is a click on a project's GitHub or live demo link.
type ProjectAction struct {
	Type ActionKind
	// Target is the raw project identifier as received, possibly empty.
	Target string
}

func (a ProjectAction) Kind() ActionKind { return a.Type }

// PlainAction is a click that is not tied to a project.
type PlainAction struct {
	Type    ActionKind
	Details string
}

func (a PlainAction) Kind() ActionKind { return a.Type }

// OtherAction is a click whose kind is not one of the known kinds. The kind
// is kept verbatim and never resolved against a project.
type OtherAction struct {
	Type    ActionKind
	Details string
}

func (a OtherAction) Kind() ActionKind { return a.Type }

// ParseAction builds the variant for a wire action kind and its details
// parameter. Only an empty kind is rejected, with ErrMissingAction.
func ParseAction(kind, details string) (Action, error) {
	if kind == "" {
		return nil, apperrors.ErrMissingAction
	}
	k := ActionKind(kind)
	switch {
	case k.IsProjectScoped():
		return ProjectAction{Type: k, Target: details}, nil
	case k.Valid():
		return PlainAction{Type: k, Details: details}, nil
	default:
		return OtherAction{Type: k, Details: details}, nil
	}
}
