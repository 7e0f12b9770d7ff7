package chat

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule maps a set of keywords to a canned reply. A rule matches when any
// keyword occurs anywhere in the lower-cased input.
type Rule struct {
	Category string
	Keywords []string
	Reply    string
}

func (r Rule) matches(lower string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// DefaultRules are evaluated top to bottom. Their order is observable:
// "kubernetes and docker" must answer as kubernetes.
var DefaultRules = []Rule{
	{
		Category: "greeting",
		Keywords: []string{"hello", "hi", "hey"},
		Reply:    "Hello! I'm your DevOps assistant. How can I help you today?",
	},
	{
		Category: "kubernetes",
		Keywords: []string{"kubernetes", "k8s", "cluster", "pod"},
		Reply:    "For Kubernetes issues, start with `kubectl get pods` and `kubectl describe pod <name>` to check pod status and recent events. Would you like help with a specific cluster resource?",
	},
	{
		Category: "docker",
		Keywords: []string{"container", "docker"},
		Reply:    "For container problems, `docker ps -a` and `docker logs <container>` usually show what went wrong. Is the container failing to start or misbehaving while running?",
	},
	{
		Category: "database",
		Keywords: []string{"database", "mongodb", "sql"},
		Reply:    "For database questions, check connectivity first, then slow queries and index usage. Which database engine are you working with?",
	},
	{
		Category: "cicd",
		Keywords: []string{"ci", "cd", "pipeline", "github actions"},
		Reply:    "For CI/CD pipelines, look at the failing step's logs and compare them with the last green run. Which CI system are you using?",
	},
	{
		Category: "error",
		Keywords: []string{"error", "bug", "issue", "fail"},
		Reply:    "Sorry you're running into trouble. Can you share the exact error message and the steps that lead to it?",
	},
	{
		Category: "thanks",
		Keywords: []string{"thank"},
		Reply:    "You're welcome! Let me know if there's anything else I can help with.",
	},
}

// DefaultFallback is a format with a single %s for the original input.
const DefaultFallback = "I understand you're asking about \"%s\". Could you provide more details so I can help?"

// Responder maps free text to a canned reply. It is deterministic and total.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder returns a Responder over rules. Nil rules means DefaultRules.
func NewResponder(rules []Rule) *Responder {
	if rules == nil {
		rules = DefaultRules
	}
	return &Responder{rules: rules, fallback: DefaultFallback}
}

// Respond returns the reply of the first rule that matches text, or the
// fallback with the original text quoted inside it.
func (r *Responder) Respond(text string) string {
	// cases.Caser is stateful, so one per call
	lower := cases.Lower(language.Und).String(text)

	for _, rule := range r.rules {
		if rule.matches(lower) {
			return rule.Reply
		}
	}

	return fmt.Sprintf(r.fallback, text)
}
