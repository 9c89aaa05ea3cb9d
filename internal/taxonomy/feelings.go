package taxonomy

import "github.com/lucasb-eyer/go-colorful"

// Default returns the built-in feelings wheel: seven cores in clockwise
// order starting with Angry.
func Default() *Taxonomy {
	t, err := New(defaultCores(), defaultSecondary(), defaultTertiary())
	if err != nil {
		panic(err)
	}
	t.Definitions = defaultDefinitions()
	return t
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCores() []Core {
	return []Core{
		{Name: "Angry", Color: mustHex("#D73527")},
		{Name: "Disgusted", Color: mustHex("#8B7355")},
		{Name: "Sad", Color: mustHex("#4A90B8")},
		{Name: "Happy", Color: mustHex("#F4C430")},
		{Name: "Surprised", Color: mustHex("#8E6EB7")},
		{Name: "Bad", Color: mustHex("#7A9B76")},
		{Name: "Fearful", Color: mustHex("#DA8B47")},
	}
}

func defaultSecondary() map[string][]string {
	return map[string][]string{
		"Angry":     {"Let Down", "Humiliated", "Bitter", "Mad", "Aggressive", "Frustrated", "Distant", "Critical"},
		"Disgusted": {"Disapproving", "Disappointed", "Awful", "Repelled"},
		"Sad":       {"Hurt", "Depressed", "Guilty", "Despair", "Vulnerable", "Lonely"},
		"Happy":     {"Playful", "Content", "Interested", "Proud", "Accepted", "Powerful", "Peaceful", "Trusting", "Optimistic"},
		"Surprised": {"Startled", "Confused", "Amazed", "Excited"},
		"Bad":       {"Bored", "Busy", "Stressed", "Tired"},
		"Fearful":   {"Scared", "Anxious", "Insecure", "Weak", "Rejected", "Threatened"},
	}
}

// Several tertiary names repeat under different parents (Embarrassed,
// Overwhelmed, Inferior), so tertiary entries are only unique per parent.
func defaultTertiary() map[string][]string {
	return map[string][]string{
		"Let Down":   {"Betrayed", "Resentful"},
		"Humiliated": {"Disrespected", "Ridiculed"},
		"Bitter":     {"Indignant", "Violated"},
		"Mad":        {"Furious", "Jealous"},
		"Aggressive": {"Provoked", "Hostile"},
		"Frustrated": {"Infuriated", "Annoyed"},
		"Distant":    {"Withdrawn", "Numb"},
		"Critical":   {"Skeptical", "Dismissive"},

		"Disapproving": {"Judgmental", "Embarrassed"},
		"Disappointed": {"Appalled", "Revolted"},
		"Awful":        {"Nauseated", "Detestable"},
		"Repelled":     {"Horrified", "Hesitant"},

		"Hurt":       {"Embarrassed", "Disappointed"},
		"Depressed":  {"Inferior", "Empty"},
		"Guilty":     {"Remorseful", "Ashamed"},
		"Despair":    {"Powerless", "Grief"},
		"Vulnerable": {"Fragile", "Victimized"},
		"Lonely":     {"Abandoned", "Isolated"},

		"Playful":    {"Aroused", "Cheeky"},
		"Content":    {"Free", "Joyful"},
		"Interested": {"Curious", "Inquisitive"},
		"Proud":      {"Successful", "Confident"},
		"Accepted":   {"Respected", "Valued"},
		"Powerful":   {"Courageous", "Creative"},
		"Peaceful":   {"Loving", "Thankful"},
		"Trusting":   {"Sensitive", "Intimate"},
		"Optimistic": {"Hopeful", "Inspired"},

		"Startled": {"Shocked", "Dismayed"},
		"Confused": {"Disillusioned", "Perplexed"},
		"Amazed":   {"Astonished", "Awed"},
		"Excited":  {"Eager", "Energetic"},

		"Bored":    {"Indifferent", "Apathetic"},
		"Busy":     {"Pressured", "Rushed"},
		"Stressed": {"Overwhelmed", "Out of Control"},
		"Tired":    {"Sleepy", "Unfocused"},

		"Scared":     {"Helpless", "Frightened"},
		"Anxious":    {"Overwhelmed", "Worried"},
		"Insecure":   {"Inadequate", "Inferior"},
		"Weak":       {"Worthless", "Insignificant"},
		"Rejected":   {"Excluded", "Persecuted"},
		"Threatened": {"Nervous", "Exposed"},
	}
}

func defaultDefinitions() map[string]string {
	return map[string]string{
		"Happy":     "A feeling of joy, pleasure, or contentment.",
		"Surprised": "A feeling of mild astonishment or shock caused by something unexpected.",
		"Bad":       "Feeling unwell, uncomfortable, or distressed.",
		"Fearful":   "Feeling afraid or anxious about something.",
		"Angry":     "Feeling or showing strong annoyance, displeasure, or hostility.",
		"Disgusted": "Feeling revulsion or strong disapproval.",
		"Sad":       "Feeling sorrow or unhappiness.",
	}
}
