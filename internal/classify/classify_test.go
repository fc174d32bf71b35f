package classify

import (
	"testing"

	"github.com/nholden/mailsort/internal/domain"
)

func newTestClassifier() *RuleClassifier {
	return NewRuleClassifier(DefaultRules())
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		email domain.Email
		want  domain.Category
	}{
		{
			"spam keyword in subject",
			domain.Email{Sender: "winner@lottery.biz", Subject: "You are a WINNER!", Body: "click here now, limited time"},
			domain.CategorySpam,
		},
		{
			"spam phrase in body",
			domain.Email{Sender: "info@shop.example", Subject: "Hello", Body: "Act NOW to secure your spot"},
			domain.CategorySpam,
		},
		{
			"blocklisted domain",
			domain.Email{Sender: "no-reply@scam.com", Subject: "Hi", Body: "just checking in"},
			domain.CategorySpam,
		},
		{
			"blocklisted subdomain",
			domain.Email{Sender: "no-reply@mail.scam.com", Subject: "Hi", Body: "just checking in"},
			domain.CategorySpam,
		},
		{
			"work domain",
			domain.Email{Sender: "boss@company.com", Subject: "Hello", Body: "see you tomorrow"},
			domain.CategoryWork,
		},
		{
			"work keyword",
			domain.Email{Sender: "someone@example.org", Subject: "Q4 Project Deadline - Important", Body: "the deadline is Friday"},
			domain.CategoryWork,
		},
		{
			"personal domain",
			domain.Email{Sender: "sis@family.com", Subject: "hey", Body: "call me"},
			domain.CategoryPersonal,
		},
		{
			"personal keyword",
			domain.Email{Sender: "joe@example.org", Subject: "dinner on Saturday?", Body: "it's been a while"},
			domain.CategoryPersonal,
		},
		{
			"promotional keyword",
			domain.Email{Sender: "news@shop.example", Subject: "Spring Sale", Body: "everything 20% off"},
			domain.CategoryPromotional,
		},
		{
			"no signal",
			domain.Email{Sender: "someone@example.org", Subject: "hello", Body: "nothing much"},
			domain.CategoryUncategorized,
		},
		{
			"empty record",
			domain.Email{},
			domain.CategoryUncategorized,
		},
		{
			"sender without at sign falls back to keywords",
			domain.Email{Sender: "postmaster", Subject: "meeting notes", Body: ""},
			domain.CategoryWork,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(&tt.email); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_SpamBeatsWork(t *testing.T) {
	c := newTestClassifier()
	e := domain.Email{
		Sender:  "boss@company.com",
		Subject: "Project update",
		Body:    "congratulations, you are a winner, click here",
	}
	if got := c.Classify(&e); got != domain.CategorySpam {
		t.Errorf("Classify() = %q, want %q (spam dominates work signals)", got, domain.CategorySpam)
	}
}

func TestClassify_WorkBeatsPersonal(t *testing.T) {
	c := newTestClassifier()
	e := domain.Email{
		Sender:  "joe@example.org",
		Subject: "family dinner moved",
		Body:    "I have a meeting that evening",
	}
	if got := c.Classify(&e); got != domain.CategoryWork {
		t.Errorf("Classify() = %q, want %q (work evaluated before personal)", got, domain.CategoryWork)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := NewRuleClassifier(Rules{
		Work: CategoryRules{Keywords: []string{"DEADLINE"}},
	})
	e := domain.Email{Subject: "DeAdLiNe approaching"}
	if got := c.Classify(&e); got != domain.CategoryWork {
		t.Errorf("Classify() = %q, want %q", got, domain.CategoryWork)
	}
}

func TestAssessPriority(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		email    domain.Email
		category domain.Category
		want     domain.Priority
	}{
		{
			"work with urgency keyword",
			domain.Email{Subject: "Q4 Project Deadline - Important", Body: "deadline Friday"},
			domain.CategoryWork,
			domain.PriorityHigh,
		},
		{
			"work without urgency",
			domain.Email{Subject: "meeting notes", Body: "minutes attached"},
			domain.CategoryWork,
			domain.PriorityNormal,
		},
		{
			"personal",
			domain.Email{Subject: "dinner?"},
			domain.CategoryPersonal,
			domain.PriorityNormal,
		},
		{
			"promotional",
			domain.Email{Subject: "big sale"},
			domain.CategoryPromotional,
			domain.PriorityLow,
		},
		{
			"uncategorized",
			domain.Email{},
			domain.CategoryUncategorized,
			domain.PriorityLow,
		},
		{
			"incoming high preserved on personal",
			domain.Email{Subject: "hey", Priority: domain.PriorityHigh},
			domain.CategoryPersonal,
			domain.PriorityHigh,
		},
		{
			"incoming high preserved on promotional",
			domain.Email{Subject: "sale", Priority: domain.PriorityHigh},
			domain.CategoryPromotional,
			domain.PriorityHigh,
		},
		{
			"spam never high despite incoming flag",
			domain.Email{Subject: "WINNER", Priority: domain.PriorityHigh},
			domain.CategorySpam,
			domain.PriorityLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.AssessPriority(&tt.email, tt.category); got != tt.want {
				t.Errorf("AssessPriority() = %q, want %q", got, tt.want)
			}
		})
	}
}
