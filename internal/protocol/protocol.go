// Package protocol defines the fixed daily-reset checklist. The catalogue is
// static: section order and item order drive display order and the completion
// denominator, so it is modeled as ordered slices rather than a map.
package protocol

// Section is one named group of checklist items.
type Section struct {
	Name  string
	Items []string
}

// Protocol is the ordered catalogue of sections.
type Protocol []Section

// Default returns the daily-reset protocol.
func Default() Protocol {
	return Protocol{
		{
			Name: "Morning Routine",
			Items: []string{
				"7:30 AM: Wake up, drink warm water, open curtains, no phone in bed",
				"7:45 AM: 5 min stretching, optional black coffee",
				"8:30-9:30 AM: Gym (strength + mobility, focus on form)",
				"Post-workout meal: Protein + moderate carbs (eggs, whey + oats, paneer + rice)",
			},
		},
		{
			Name: "Morning Skincare",
			Items: []string{
				"Gentle cleanser",
				"Niacinamide serum",
				"Light moisturizer",
				"Sunscreen SPF 30+ (every day)",
			},
		},
		{
			Name: "Daytime Habits",
			Items: []string{
				"Drink 2-3 liters of water",
				"10 min walk after lunch",
				"Deep work in first 90 minutes",
				"Keep evening routine calm after 6-8 PM",
				"Avoid late-night snacking",
			},
		},
		{
			Name: "Evening Routine",
			Items: []string{
				"Dinner: Protein + veggies (moderate carbs if needed)",
				"Dim lights after 8:30 PM",
				"Avoid intense work or overthinking late at night",
			},
		},
		{
			Name: "Night Skincare",
			Items: []string{
				"Retinol nights (2-3x/week): Cleanser -> Retinol -> Moisturizer",
				"Non-retinol nights: Cleanser -> Moisturizer only",
			},
		},
		{
			Name: "Bedtime",
			Items: []string{
				"Brush teeth, wash face",
				"5 min journaling if thoughts are racing",
				"In bed by 12:30 AM",
				"Lights out before 1:00 AM",
			},
		},
		{
			Name: "Weekly Checkpoint",
			Items: []string{
				"2 light cardio days",
				"1 full rest day",
				"Change pillowcase weekly",
				"Shower after gym sessions",
			},
		},
	}
}

// ItemCount returns the total number of checklist items across all sections.
// This is the denominator for completion percentages.
func (p Protocol) ItemCount() int {
	count := 0
	for _, section := range p {
		count += len(section.Items)
	}
	return count
}

// Find returns the section with the given name.
func (p Protocol) Find(name string) (Section, bool) {
	for _, section := range p {
		if section.Name == name {
			return section, true
		}
	}
	return Section{}, false
}

// Contains reports whether the (section, item) pair is part of the protocol.
// Check rows for pairs outside the protocol are inert but never purged.
func (p Protocol) Contains(section, item string) bool {
	s, ok := p.Find(section)
	if !ok {
		return false
	}
	for _, it := range s.Items {
		if it == item {
			return true
		}
	}
	return false
}
