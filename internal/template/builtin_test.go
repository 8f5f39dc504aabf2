package template

import (
	"strings"
	"testing"

	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
)

func findFile(t *testing.T, def *Definition, path string) FileSpec {
	t.Helper()
	for _, f := range def.Files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("template %q has no file %q", def.Name, path)
	return FileSpec{}
}

func TestWebappConditionalFiles(t *testing.T) {
	def := webappTemplate()
	eslint := findFile(t, def, ".eslintrc.json")

	if eslint.Included(prompt.AnswerSet{"useLint": false}) {
		t.Error(".eslintrc.json included with useLint=false")
	}
	if !eslint.Included(prompt.AnswerSet{"useLint": true}) {
		t.Error(".eslintrc.json excluded with useLint=true")
	}

	content := eslint.Resolve(prompt.AnswerSet{"useLint": true, "lintStyle": "standard"})
	if !strings.Contains(content, `"extends": "standard"`) {
		t.Errorf("eslint config = %q", content)
	}
}

func TestWebappServerMiddleware(t *testing.T) {
	def := webappTemplate()
	server := findFile(t, def, "src/server.js")

	answers := prompt.AnswerSet{
		"projectName": "demo",
		"middleware":  []string{"cors", "body-parser"},
	}
	content := server.Resolve(answers)

	if !strings.Contains(content, "require('cors')") {
		t.Error("cors middleware missing")
	}
	if !strings.Contains(content, "express.json()") {
		t.Error("body parsing middleware missing")
	}
	if strings.Contains(content, "morgan") {
		t.Error("unselected morgan middleware present")
	}
}

func TestLintStylePromptVisibility(t *testing.T) {
	def := webappTemplate()

	var lintStyle *prompt.Definition
	for i := range def.Prompts {
		if def.Prompts[i].Name == "lintStyle" {
			lintStyle = &def.Prompts[i]
		}
	}
	if lintStyle == nil {
		t.Fatal("webapp has no lintStyle prompt")
	}
	if lintStyle.When == nil {
		t.Fatal("lintStyle prompt has no visibility predicate")
	}
	if lintStyle.When(prompt.AnswerSet{"useLint": false}) {
		t.Error("lintStyle visible without useLint")
	}
	if !lintStyle.When(prompt.AnswerSet{"useLint": true}) {
		t.Error("lintStyle hidden despite useLint")
	}
}

func TestReadmeRendersAnswers(t *testing.T) {
	def := basicTemplate()
	readme := findFile(t, def, "README.md")

	content := readme.Resolve(prompt.AnswerSet{
		"projectName": "demo",
		"description": "A demo project",
	})
	if !strings.HasPrefix(content, "# demo\n") {
		t.Errorf("README = %q", content)
	}
	if !strings.Contains(content, "A demo project") {
		t.Error("README missing the description answer")
	}
}
