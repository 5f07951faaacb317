// Package helpline lists where to report a concern or get help.
package helpline

import (
	"fmt"
	"strings"
)

// Contact is one place to get help.
type Contact struct {
	Name  string
	About string
	Phone string
	Text  string
	URL   string
}

// Emergency is shown wherever reporting is offered.
const Emergency = "In immediate danger? Call 911 or local emergency services."

// Reassurance opens the report view.
const Reassurance = "You're doing the right thing. If you've seen something that doesn't feel right, a strange message, a shady ad, or a room that made you uncomfortable, this is a safe place to act on it."

var contacts = []Contact{
	{
		Name:  "Send a Tip Anonymously",
		About: "Share what you saw: a message, a photo, or just your gut feeling. You don't have to give your name.",
		URL:   "https://humantraffickinghotline.org/report-trafficking",
	},
	{
		Name:  "U.S. National Human Trafficking Hotline",
		About: "Trained professionals are available 24/7 to listen and help, anonymously.",
		Phone: "1-888-373-7888",
		Text:  `233733 (text "HELP" or "INFO")`,
		URL:   "https://humantraffickinghotline.org",
	},
}

var privacyTips = []string{
	"We never collect or store your information.",
	"If you're in danger, use a private terminal session or a shared computer's guest account.",
	"Clear your shell history after using this tool.",
}

// Contacts returns the help contacts in display order.
func Contacts() []Contact {
	out := make([]Contact, len(contacts))
	copy(out, contacts)
	return out
}

// PrivacyTips returns short safety notes for people using a shared device.
func PrivacyTips() []string {
	out := make([]string, len(privacyTips))
	copy(out, privacyTips)
	return out
}

// Lines renders the contact as plain text lines, skipping empty fields.
func (c Contact) Lines() []string {
	lines := []string{c.Name}
	if c.About != "" {
		lines = append(lines, "  "+c.About)
	}
	for _, f := range []struct{ label, value string }{
		{"Call", c.Phone},
		{"Text", c.Text},
		{"Web", c.URL},
	} {
		if f.value != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", f.label, f.value))
		}
	}
	return lines
}

// String renders the contact as a plain text block.
func (c Contact) String() string {
	return strings.Join(c.Lines(), "\n")
}
