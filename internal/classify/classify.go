// Package classify assigns a category and a priority level to email
// records. Classification is rule-based today; the Classifier
// interface is the seam for swapping in a learned model later.
package classify

import (
	"strings"

	"github.com/nholden/mailsort/internal/domain"
)

// Classifier maps an email to a category and derives its priority.
// Implementations must be total: every email gets a category from the
// enumerated set and one of the three priority levels, never an error.
type Classifier interface {
	Classify(e *domain.Email) domain.Category
	AssessPriority(e *domain.Email, cat domain.Category) domain.Priority
}

// RuleClassifier classifies by keyword, domain, and phrase matching
// against configured rule tables.
type RuleClassifier struct {
	rules Rules
}

// NewRuleClassifier creates a classifier over the given rule tables.
func NewRuleClassifier(rules Rules) *RuleClassifier {
	return &RuleClassifier{rules: rules}
}

// Classify evaluates the rule tables in fixed precedence: spam, work,
// personal, promotional. First match wins; overt fraud signals
// dominate legitimate-sounding business language. No match returns
// CategoryUncategorized.
func (c *RuleClassifier) Classify(e *domain.Email) domain.Category {
	text := strings.ToLower(e.Subject + " " + e.Body)
	dom := e.SenderDomain()

	switch {
	case domainMatch(dom, c.rules.Spam.Domains),
		anyContains(text, c.rules.Spam.Keywords),
		anyContains(text, c.rules.Spam.Phrases):
		return domain.CategorySpam

	case domainMatch(dom, c.rules.Work.Domains),
		anyContains(text, c.rules.Work.Keywords):
		return domain.CategoryWork

	case domainMatch(dom, c.rules.Personal.Domains),
		anyContains(text, c.rules.Personal.Keywords):
		return domain.CategoryPersonal

	case anyContains(text, c.rules.Promotional.Keywords):
		return domain.CategoryPromotional

	default:
		return domain.CategoryUncategorized
	}
}

// AssessPriority derives the priority level for an email given its
// category. Work email with an urgency keyword is high. An incoming
// high priority is preserved on any non-spam record; spam is never
// high regardless of incoming flags, so it cannot surface as an
// alert.
func (c *RuleClassifier) AssessPriority(e *domain.Email, cat domain.Category) domain.Priority {
	if cat == domain.CategorySpam {
		return domain.PriorityLow
	}
	if e.Priority == domain.PriorityHigh {
		return domain.PriorityHigh
	}

	switch cat {
	case domain.CategoryWork:
		text := strings.ToLower(e.Subject + " " + e.Body)
		if anyContains(text, c.rules.Priority.Urgency) {
			return domain.PriorityHigh
		}
		return domain.PriorityNormal
	case domain.CategoryPersonal:
		return domain.PriorityNormal
	default:
		return domain.PriorityLow
	}
}

// anyContains reports whether text contains any of the needles.
// Needles are lowercased before comparison; text must already be.
func anyContains(text string, needles []string) bool {
	for _, n := range needles {
		if n == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// domainMatch reports whether dom equals a configured domain or is a
// subdomain of one. An empty dom never matches, so senders without an
// @ degrade to keyword-only signals.
func domainMatch(dom string, domains []string) bool {
	if dom == "" {
		return false
	}
	for _, d := range domains {
		d = strings.ToLower(d)
		if d == "" {
			continue
		}
		if dom == d || strings.HasSuffix(dom, "."+d) {
			return true
		}
	}
	return false
}
