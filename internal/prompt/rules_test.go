package prompt

import "testing"

func TestProjectNameRule(t *testing.T) {
	rule := ProjectName()

	valid := []string{"my-app", "app2", "0day"}
	for _, name := range valid {
		if ok, _ := rule.Apply(name, nil); !ok {
			t.Errorf("ProjectName rejected valid name %q", name)
		}
	}

	invalid := []string{"", "-app", "My-App", "my_app", "my app"}
	for _, name := range invalid {
		if ok, _ := rule.Apply(name, nil); ok {
			t.Errorf("ProjectName accepted invalid name %q", name)
		}
	}
}

func TestRuleMessageFallback(t *testing.T) {
	t.Run("dynamic message wins", func(t *testing.T) {
		rule := &Rule{
			Validate: func(string, AnswerSet) (bool, string) { return false, "dynamic" },
			Message:  "static",
		}
		if _, msg := rule.Apply("x", nil); msg != "dynamic" {
			t.Errorf("msg = %q, want the dynamic message", msg)
		}
	})

	t.Run("static message when dynamic empty", func(t *testing.T) {
		rule := &Rule{
			Validate: func(string, AnswerSet) (bool, string) { return false, "" },
			Message:  "static",
		}
		if _, msg := rule.Apply("x", nil); msg != "static" {
			t.Errorf("msg = %q, want the static message", msg)
		}
	})

	t.Run("generic message when both empty", func(t *testing.T) {
		rule := &Rule{
			Validate: func(string, AnswerSet) (bool, string) { return false, "" },
		}
		if _, msg := rule.Apply("x", nil); msg == "" {
			t.Error("msg should never be empty on failure")
		}
	})
}

func TestMinLength(t *testing.T) {
	rule := MinLength(3)
	if ok, _ := rule.Apply("ab", nil); ok {
		t.Error("MinLength(3) accepted a 2-character value")
	}
	if ok, _ := rule.Apply("abc", nil); !ok {
		t.Error("MinLength(3) rejected a 3-character value")
	}
}
