package promptkit

// Template is a ready-made question.
type Template struct {
	Title string
	Check CheckType
	Text  string
}

// Example is the one-line example question shown first.
const Example = "You are a safety helper. Check this job ad for danger signs. Focus on secrecy, 'no ID,' and overnight work. Answer in 3 short bullets."

// WhyItWorks explains the recipe behind every template.
const WhyItWorks = "Why it works: we told the helper its role, task, focus, and how to answer."

var quickQuestions = []Template{
	{
		Title: "Job Ad",
		Check: CheckJobAd,
		Text: `You are a safety helper. Check this job ad for danger signs (secrecy, 'no ID,' cash-only, overnight work). Give a risk (low/medium/high), 3 short bullet reasons, and 2 gentle next-step ideas.
Job ad: """<paste here>"""`,
	},
	{
		Title: "Chat Messages",
		Check: CheckChat,
		Text: `You are a safety helper. Check this chat for control or pressure (secrecy, threats, fear, urgency). Quote exact phrases that worry you, then explain in simple words and give 2 next steps.
Chat: """<paste here>"""`,
	},
	{
		Title: "Room Photo",
		Check: CheckRoomPhoto,
		Text:  `You are a safety helper. I will upload a room photo. Look for multiple mattresses close together, blocked windows/blackout curtains, padlocks inside, or no personal items. Give a risk label and 3 short reasons.`,
	},
}

// QuickQuestions returns the one-tap templates.
func QuickQuestions() []Template {
	out := make([]Template, len(quickQuestions))
	copy(out, quickQuestions)
	return out
}

// QuickQuestion returns the template for a check type, if one exists.
func QuickQuestion(c CheckType) (Template, bool) {
	for _, q := range quickQuestions {
		if q.Check == c {
			return q, true
		}
	}
	return Template{}, false
}
