package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
)

// Builtins returns the template set shipped with the CLI.
func Builtins() []*Definition {
	return []*Definition{basicTemplate(), libraryTemplate(), webappTemplate()}
}

// RegisterBuiltins registers every built-in template.
func RegisterBuiltins(r *Registry) error {
	for _, def := range Builtins() {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// sharedPrompts are asked by every built-in template before its own prompts.
func sharedPrompts() []prompt.Definition {
	return []prompt.Definition{
		{
			Name:    "description",
			Kind:    prompt.KindInput,
			Message: "Project description",
			Default: "A new project",
		},
		{
			Name:    "author",
			Kind:    prompt.KindInput,
			Message: "Author",
		},
		{
			Name:    "license",
			Kind:    prompt.KindSelect,
			Message: "License",
			Choices: []prompt.Choice{
				{Label: "MIT", Value: "MIT", Description: "permissive"},
				{Label: "Apache 2.0", Value: "Apache-2.0", Description: "permissive, patent grant"},
				{Label: "ISC", Value: "ISC"},
			},
		},
		{
			Name:    "installDeps",
			Kind:    prompt.KindConfirm,
			Message: "Install dependencies after generation?",
			Default: true,
		},
	}
}

func readme(answers prompt.AnswerSet) string {
	name := answers.String("projectName")
	desc := answers.String("description")
	return fmt.Sprintf("# %s\n\n%s\n\n## Getting started\n\n```sh\nnpm install\nnpm start\n```\n", name, desc)
}

const gitignore = `node_modules/
dist/
.env
*.log
`

func basicTemplate() *Definition {
	return &Definition{
		Name:        "basic",
		Description: "Minimal starter with a single entry point",
		Prompts:     sharedPrompts(),
		Files: []FileSpec{
			{Path: "README.md", Render: readme},
			{Path: ".gitignore", Content: gitignore},
			{Path: "index.js", Render: func(answers prompt.AnswerSet) string {
				return fmt.Sprintf("console.log('Hello from %s');\n", answers.String("projectName"))
			}},
		},
		Scripts: map[string]string{
			"start": "node index.js",
			"test":  "echo \"no tests yet\" && exit 0",
		},
	}
}

func libraryTemplate() *Definition {
	prompts := append(sharedPrompts(), prompt.Definition{
		Name:    "useTypes",
		Kind:    prompt.KindConfirm,
		Message: "Ship a type declaration file?",
		Default: true,
	})

	return &Definition{
		Name:        "library",
		Description: "Publishable library with lint and format tooling",
		Prompts:     prompts,
		Files: []FileSpec{
			{Path: "README.md", Render: readme},
			{Path: ".gitignore", Content: gitignore},
			{Path: "src/index.js", Render: func(answers prompt.AnswerSet) string {
				return fmt.Sprintf("export function greet() {\n  return 'Hello from %s';\n}\n", answers.String("projectName"))
			}},
			{
				Path:    "src/index.d.ts",
				Content: "export declare function greet(): string;\n",
				When: func(answers prompt.AnswerSet) bool {
					return answers.Bool("useTypes")
				},
			},
			{Path: ".prettierrc", Content: "{\n  \"singleQuote\": true\n}\n"},
		},
		Dependencies: Dependencies{
			Dev: map[string]string{
				"prettier": "^3.3.0",
				"vitest":   "^2.0.0",
			},
		},
		Scripts: map[string]string{
			"test":   "vitest run",
			"format": "prettier --write .",
		},
		PostInstall: func(_ context.Context, projectPath string, answers prompt.AnswerSet) error {
			// Seed a changelog so the first release has somewhere to land.
			entry := fmt.Sprintf("# Changelog\n\n## 0.1.0\n\n- scaffold %s\n", answers.String("projectName"))
			path := filepath.Join(projectPath, "CHANGELOG.md")
			if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
				return fmt.Errorf("seeding changelog: %w", err)
			}
			return nil
		},
	}
}

func webappTemplate() *Definition {
	prompts := append(sharedPrompts(),
		prompt.Definition{
			Name:    "useLint",
			Kind:    prompt.KindConfirm,
			Message: "Add ESLint?",
			Default: true,
		},
		prompt.Definition{
			Name:    "lintStyle",
			Kind:    prompt.KindSelect,
			Message: "ESLint base config",
			Choices: []prompt.Choice{
				{Label: "Recommended", Value: "eslint:recommended"},
				{Label: "Standard", Value: "standard"},
			},
			When: func(answers prompt.AnswerSet) bool {
				return answers.Bool("useLint")
			},
		},
		prompt.Definition{
			Name:    "middleware",
			Kind:    prompt.KindMultiSelect,
			Message: "Middleware to enable",
			Choices: []prompt.Choice{
				{Label: "CORS", Value: "cors"},
				{Label: "Request logging", Value: "morgan"},
				{Label: "Body parsing", Value: "body-parser"},
			},
		},
	)

	return &Definition{
		Name:        "webapp",
		Description: "Express web application with environment config",
		Prompts:     prompts,
		Files: []FileSpec{
			{Path: "README.md", Render: readme},
			{Path: ".gitignore", Content: gitignore},
			{Path: "src/server.js", Render: serverJS},
			{Path: ".env.example", Content: "PORT=3000\n"},
			{
				Path: ".eslintrc.json",
				Render: func(answers prompt.AnswerSet) string {
					return fmt.Sprintf("{\n  \"extends\": \"%s\",\n  \"env\": { \"node\": true }\n}\n", answers.String("lintStyle"))
				},
				When: func(answers prompt.AnswerSet) bool {
					return answers.Bool("useLint")
				},
			},
		},
		Dependencies: Dependencies{
			Runtime: map[string]string{
				"express": "^4.19.0",
				"dotenv":  "^16.4.0",
			},
			Dev: map[string]string{
				"nodemon": "^3.1.0",
			},
		},
		Scripts: map[string]string{
			"start": "node src/server.js",
			"dev":   "nodemon src/server.js",
		},
	}
}

func serverJS(answers prompt.AnswerSet) string {
	name := answers.String("projectName")
	uses := ""
	for _, m := range answers.List("middleware") {
		switch m {
		case "cors":
			uses += "app.use(require('cors')());\n"
		case "morgan":
			uses += "app.use(require('morgan')('dev'));\n"
		case "body-parser":
			uses += "app.use(express.json());\n"
		}
	}
	return fmt.Sprintf(`require('dotenv').config();
const express = require('express');

const app = express();
%s
app.get('/', (req, res) => {
  res.json({ name: '%s' });
});

const port = process.env.PORT || 3000;
app.listen(port, () => {
  console.log('%s listening on port ' + port);
});
`, uses, name, name)
}
