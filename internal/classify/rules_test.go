package classify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nholden/mailsort/internal/domain"
)

func TestLoadRules_Defaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if len(rules.Spam.Keywords) == 0 {
		t.Error("default spam keywords are empty")
	}
	if len(rules.Work.Domains) == 0 {
		t.Error("default work domains are empty")
	}
	if len(rules.Priority.Urgency) == 0 {
		t.Error("default urgency keywords are empty")
	}
}

func TestLoadRules_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	content := `
[spam]
domains = ["evil.example"]
keywords = ["pyramid scheme"]
phrases = ["once in a lifetime"]

[work]
domains = ["initech.example"]
keywords = ["tps report"]

[priority]
urgency = ["blocker"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}

	c := NewRuleClassifier(*rules)

	e := domain.Email{Sender: "x@evil.example", Subject: "hi"}
	if got := c.Classify(&e); got != domain.CategorySpam {
		t.Errorf("Classify() with file rules = %q, want %q", got, domain.CategorySpam)
	}

	e = domain.Email{Sender: "peter@initech.example", Subject: "tps report", Body: "blocker on the cover sheet"}
	if got := c.Classify(&e); got != domain.CategoryWork {
		t.Errorf("Classify() = %q, want %q", got, domain.CategoryWork)
	}
	if got := c.AssessPriority(&e, domain.CategoryWork); got != domain.PriorityHigh {
		t.Errorf("AssessPriority() = %q, want %q (custom urgency keyword)", got, domain.PriorityHigh)
	}
}

func TestLoadRules_NonExistentFile(t *testing.T) {
	rules, err := LoadRules("/nonexistent/rules.toml")
	if err != nil {
		t.Fatalf("LoadRules() should return defaults for missing file, got error: %v", err)
	}
	if len(rules.Spam.Keywords) == 0 {
		t.Error("expected default rules for missing file")
	}
}

func TestLoadRules_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	if err := os.WriteFile(path, []byte("not valid [[ toml"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRules(path)
	if err == nil {
		t.Fatal("LoadRules() should return error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse rules") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "failed to parse rules")
	}
}
