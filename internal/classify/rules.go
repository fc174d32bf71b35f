package classify

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Rules holds the externally configurable keyword, domain, and phrase
// tables the rule classifier evaluates. Tables are data, not control
// flow: extending a category means editing the rules file, not the
// classifier.
type Rules struct {
	Spam        SpamRules     `toml:"spam"`
	Work        CategoryRules `toml:"work"`
	Personal    CategoryRules `toml:"personal"`
	Promotional CategoryRules `toml:"promotional"`
	Priority    PriorityRules `toml:"priority"`
}

// SpamRules lists spam signals. Any single match is sufficient.
type SpamRules struct {
	Domains  []string `toml:"domains"`
	Keywords []string `toml:"keywords"`
	Phrases  []string `toml:"phrases"`
}

// CategoryRules lists the domain and keyword signals for one category.
type CategoryRules struct {
	Domains  []string `toml:"domains"`
	Keywords []string `toml:"keywords"`
}

// PriorityRules lists the urgency keywords that promote work email to
// high priority.
type PriorityRules struct {
	Urgency []string `toml:"urgency"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() Rules {
	return Rules{
		Spam: SpamRules{
			Domains: []string{"spamsite.com", "scam.com", "fake.com", "lottery.biz"},
			Keywords: []string{
				"winner", "congratulations", "lottery", "free money",
				"million dollars", "wire transfer", "prince",
			},
			Phrases: []string{
				"act now", "click here", "limited time offer",
				"claim your prize", "you have been selected",
			},
		},
		Work: CategoryRules{
			Domains: []string{"company.com", "work.com", "corp.com"},
			Keywords: []string{
				"project", "deadline", "meeting", "report", "quarterly",
				"budget", "team", "office", "invoice", "hr", "benefits",
			},
		},
		Personal: CategoryRules{
			Domains: []string{"family.com", "friend.com", "personal.com"},
			Keywords: []string{
				"family", "friend", "dinner", "weekend", "birthday",
				"mom", "dad", "sister", "brother", "hiking", "vacation",
			},
		},
		Promotional: CategoryRules{
			Keywords: []string{
				"sale", "discount", "% off", "deal", "offer",
				"newsletter", "unsubscribe", "promotion",
			},
		},
		Priority: PriorityRules{
			Urgency: []string{"urgent", "deadline", "asap", "important", "eod"},
		},
	}
}

// LoadRules reads rule tables from path. An empty path or a missing
// file returns the built-in defaults.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return &rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &rules, nil
		}
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}
	if err := toml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return &rules, nil
}
