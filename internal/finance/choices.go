package finance

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ChoiceOption is one selectable option with its fixed monthly cost.
type ChoiceOption struct {
	Label string  `yaml:"label"`
	Cost  float64 `yaml:"cost"`
}

// Choice is one monthly decision: an ordered catalog of these drives
// the fixed "needs" costs fed into the month close.
type Choice struct {
	ID      string                  `yaml:"id"`
	Title   string                  `yaml:"title"`
	Prompt  string                  `yaml:"prompt"`
	Options map[string]ChoiceOption `yaml:"options"`
}

// OptionIDs returns the option ids in stable sorted order.
func (c Choice) OptionIDs() []string {
	ids := make([]string, 0, len(c.Options))
	for id := range c.Options {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultCatalog returns the built-in decision catalog used when no
// catalog file is configured.
func DefaultCatalog() []Choice {
	return []Choice{
		{
			ID:     "phone_plan",
			Title:  "Phone Plan",
			Prompt: "Pick a plan for this month.",
			Options: map[string]ChoiceOption{
				"basic":    {Label: "Basic ($30/mo)", Cost: 30},
				"standard": {Label: "Standard ($55/mo)", Cost: 55},
				"premium":  {Label: "Premium ($80/mo)", Cost: 80},
			},
		},
		{
			ID:     "transit",
			Title:  "Getting Around",
			Prompt: "How do you commute?",
			Options: map[string]ChoiceOption{
				"bus":       {Label: "Bus Pass ($50)", Cost: 50},
				"rideshare": {Label: "Ride-share (~$120)", Cost: 120},
				"bike":      {Label: "Bike (maintenance $10)", Cost: 10},
			},
		},
		{
			ID:     ChoiceCreditCard,
			Title:  "Credit Card Behavior",
			Prompt: "How will you handle your card this month?",
			Options: map[string]ChoiceOption{
				ChoicePayFull: {Label: "Pay statement in full", Cost: 0},
				"min_pay":     {Label: "Make only minimum payment", Cost: 0},
			},
		},
	}
}

// LoadCatalog reads a YAML choice catalog. A missing path falls back
// to the built-in catalog.
func LoadCatalog(path string) ([]Choice, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog []Choice
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, c := range catalog {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog: choice with empty id")
		}
		if len(c.Options) == 0 {
			return nil, fmt.Errorf("catalog: choice %q has no options", c.ID)
		}
	}
	return catalog, nil
}

// FindChoice looks up a decision by id.
func FindChoice(catalog []Choice, id string) (Choice, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// FixedNeedsFromChoices totals the fixed monthly cost of the selected
// options. Unknown choice ids and unknown option ids are ignored.
func FixedNeedsFromChoices(catalog []Choice, selected map[string]string) float64 {
	total := 0.0
	for _, c := range catalog {
		optID, ok := selected[c.ID]
		if !ok {
			continue
		}
		if opt, ok := c.Options[optID]; ok {
			total += opt.Cost
		}
	}
	return round2(total)
}
