// Package promptkit builds safe questions to paste into an AI assistant:
// who the helper is, what to check, what to focus on and how to answer.
package promptkit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Placeholder marks where the user pastes the material to check.
const Placeholder = "<paste here>"

// MaxFocus is the number of focus items a question may carry.
const MaxFocus = 3

var (
	// ErrFocusFull is returned when a fourth focus item is selected.
	ErrFocusFull = errors.New("at most 3 focus items")

	// ErrUnknownChoice is returned for a role, check type, style or focus
	// item outside the fixed lists.
	ErrUnknownChoice = errors.New("unknown choice")
)

// Role is who the helper pretends to be.
type Role string

const (
	RoleSafetyHelper  Role = "Safety helper"
	RoleTeacherHelper Role = "Teacher helper"
	RoleParentAdvisor Role = "Parent advisor"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleSafetyHelper, RoleTeacherHelper, RoleParentAdvisor}

// CheckType is the kind of material being checked.
type CheckType string

const (
	CheckJobAd     CheckType = "Job ad"
	CheckChat      CheckType = "Chat"
	CheckRoomPhoto CheckType = "Room photo"
	CheckOtherText CheckType = "Other text"
)

// CheckTypes lists the selectable check types in display order.
var CheckTypes = []CheckType{CheckJobAd, CheckChat, CheckRoomPhoto, CheckOtherText}

// Slug returns the command-line form, e.g. "job-ad".
func (c CheckType) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Style is how the helper should answer.
type Style string

const (
	StyleBullets     Style = "3 bullets"
	StyleRiskReasons Style = "risk label + 3 reasons"
	StyleParagraph   Style = "short paragraph"
)

// Styles lists the selectable output styles in display order.
var Styles = []Style{StyleBullets, StyleRiskReasons, StyleParagraph}

func (s Style) instruction() string {
	switch s {
	case StyleBullets:
		return "Give 3 short bullets"
	case StyleRiskReasons:
		return "Give a risk label (low/medium/high) and 3 reasons"
	default:
		return "Answer in a short paragraph"
	}
}

// FocusOptions lists the selectable focus items in display order.
var FocusOptions = []string{
	"secrecy",
	"pressure/urgency",
	"no-ID/cash-only",
	"overnight work",
	"blocked windows",
	"multiple beds",
	"isolation",
}

// defaultFocus is used when no focus item is selected.
const defaultFocus = "safety concerns"

// Builder assembles a question. The zero value is not ready; use
// NewBuilder.
type Builder struct {
	role  Role
	check CheckType
	style Style
	focus []string
}

// NewBuilder returns a builder with the default choices: safety helper,
// job ad, three bullets, no focus.
func NewBuilder() *Builder {
	return &Builder{
		role:  RoleSafetyHelper,
		check: CheckJobAd,
		style: StyleBullets,
	}
}

func (b *Builder) Role() Role           { return b.role }
func (b *Builder) CheckType() CheckType { return b.check }
func (b *Builder) Style() Style         { return b.style }

// Focus returns the selected focus items in selection order.
func (b *Builder) Focus() []string {
	return slices.Clone(b.focus)
}

// SetRole selects the helper role.
func (b *Builder) SetRole(r Role) error {
	if !slices.Contains(Roles, r) {
		return fmt.Errorf("role %q: %w", r, ErrUnknownChoice)
	}
	b.role = r
	return nil
}

// SetCheckType selects what is being checked.
func (b *Builder) SetCheckType(c CheckType) error {
	if !slices.Contains(CheckTypes, c) {
		return fmt.Errorf("check type %q: %w", c, ErrUnknownChoice)
	}
	b.check = c
	return nil
}

// SetStyle selects the answer style.
func (b *Builder) SetStyle(s Style) error {
	if !slices.Contains(Styles, s) {
		return fmt.Errorf("style %q: %w", s, ErrUnknownChoice)
	}
	b.style = s
	return nil
}

// Toggle selects or deselects a focus item and reports whether it is now
// selected. Selecting a fourth item fails with ErrFocusFull and changes
// nothing.
func (b *Builder) Toggle(item string) (bool, error) {
	if !slices.Contains(FocusOptions, item) {
		return false, fmt.Errorf("focus %q: %w", item, ErrUnknownChoice)
	}
	if i := slices.Index(b.focus, item); i >= 0 {
		b.focus = slices.Delete(b.focus, i, i+1)
		return false, nil
	}
	if len(b.focus) >= MaxFocus {
		return false, ErrFocusFull
	}
	b.focus = append(b.focus, item)
	return true, nil
}

// CanSelect reports whether item could be toggled on right now.
func (b *Builder) CanSelect(item string) bool {
	return slices.Contains(b.focus, item) || len(b.focus) < MaxFocus
}

// Build renders the question with the paste placeholder.
func (b *Builder) Build() string {
	focus := defaultFocus
	if len(b.focus) > 0 {
		focus = strings.Join(b.focus, ", ")
	}
	return fmt.Sprintf("You are a %s. Check this %s for %s. %s.\n%s: \"\"\"%s\"\"\"",
		strings.ToLower(string(b.role)),
		strings.ToLower(string(b.check)),
		focus,
		b.style.instruction(),
		b.check,
		Placeholder,
	)
}

// Fill puts content where the placeholder is, or appends it on a new line
// when the question has none.
func Fill(question, content string) string {
	if strings.Contains(question, Placeholder) {
		return strings.Replace(question, Placeholder, content, 1)
	}
	return question + "\n" + content
}

// ParseRole matches a role by name, case-insensitively.
func ParseRole(s string) (Role, error) {
	return parseChoice(s, Roles, "role")
}

// ParseCheckType matches a check type by name or slug, case-insensitively.
func ParseCheckType(s string) (CheckType, error) {
	for _, c := range CheckTypes {
		if strings.EqualFold(s, c.Slug()) {
			return c, nil
		}
	}
	return parseChoice(s, CheckTypes, "check type")
}

// ParseStyle matches a style by name, case-insensitively.
func ParseStyle(s string) (Style, error) {
	return parseChoice(s, Styles, "style")
}

func parseChoice[T ~string](s string, choices []T, what string) (T, error) {
	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", what, s, ErrUnknownChoice)
}
