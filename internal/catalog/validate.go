package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateModules performs all structural checks on the given modules.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	if len(modules) == 0 {
		errs = append(errs, "catalog has no modules")
	}

	moduleIDs := make(map[string]bool, len(modules))
	badgeIDs := make(map[string]string, len(modules))
	levelOwner := make(map[string]string)

	for mi, m := range modules {
		name := m.ID
		if name == "" {
			name = fmt.Sprintf("#%d", mi)
			errs = append(errs, fmt.Sprintf("module %s has an empty ID", name))
		} else if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		switch {
		case m.BadgeID == "":
			errs = append(errs, fmt.Sprintf("module %q has an empty badge ID", name))
		case badgeIDs[m.BadgeID] != "":
			errs = append(errs, fmt.Sprintf("badge %q is awarded by both %q and %q", m.BadgeID, badgeIDs[m.BadgeID], name))
		default:
			badgeIDs[m.BadgeID] = name
		}

		if len(m.Levels) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no levels", name))
		}

		for li, l := range m.Levels {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("module %q level #%d has an empty ID", name, li))
				continue
			}
			if owner, dup := levelOwner[l.ID]; dup {
				errs = append(errs, fmt.Sprintf("duplicate level ID %q (modules %q and %q)", l.ID, owner, name))
			} else {
				levelOwner[l.ID] = name
			}
			if q, ok := l.Quiz(); ok {
				errs = append(errs, validateQuiz(l.ID, q)...)
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateQuiz(levelID string, q *Quiz) []string {
	var errs []string
	prefix := fmt.Sprintf("level %q quiz", levelID)

	if q == nil {
		return []string{prefix + ": nil quiz payload"}
	}
	if len(q.Options) == 0 {
		errs = append(errs, prefix+": no options")
	}

	seen := make(map[string]bool, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if o.Text == "" {
			errs = append(errs, prefix+": option with empty text")
		}
		if seen[o.Text] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o.Text))
		}
		seen[o.Text] = true
		if o.Correct {
			correct++
		}
	}
	if len(q.Options) > 0 && correct == 0 {
		errs = append(errs, prefix+": no option is marked correct")
	}
	return errs
}
