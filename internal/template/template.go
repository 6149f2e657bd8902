// Package template holds the static registry of prompt templates and the
// instruction strings keyed by model target, verbosity and language. All of
// it is built once at init and never mutated.
package template

import "fmt"

// Config describes one prompt template.
type Config struct {
	ID          string
	Name        string
	Description string
	Icon        string
	// SystemContext is the high-level instruction injected into the
	// AI-enhanced system prompt.
	SystemContext string
	// RolePreamble is placed at the top of deterministic output.
	RolePreamble string
}

// IDs lists the template ids in registry order.
var IDs = []string{"general", "coding", "marketing", "meeting", "support", "research"}

var registry = map[string]Config{
	"general": {
		ID:          "general",
		Name:        "General Assistant",
		Description: "Clear, structured prompt for any general task",
		Icon:        "✨",
		SystemContext: "Transform this voice transcript into a clear, actionable prompt for a general-purpose AI assistant. " +
			"Structure it with Goal, Context, Constraints, Expected Output, and Success Criteria.",
		RolePreamble: "You are a helpful AI assistant. Please complete the following task carefully and thoroughly:",
	},
	"coding": {
		ID:          "coding",
		Name:        "Coding Task",
		Description: "Optimised for code generation, review & debugging",
		Icon:        "💻",
		SystemContext: "Transform this voice transcript into a precise technical prompt for a coding AI assistant. " +
			"Include Goal, Technical Context (languages/frameworks), Requirements & Constraints, " +
			"Input/Output Specification, Code Style, and Success Criteria.",
		RolePreamble: "You are an expert software engineer. Please help with the following technical task:",
	},
	"marketing": {
		ID:          "marketing",
		Name:        "Marketing Copy",
		Description: "Craft compelling marketing & copywriting prompts",
		Icon:        "📣",
		SystemContext: "Transform this voice transcript into an effective prompt for generating marketing copy. " +
			"Include Campaign Goal, Target Audience, Brand Voice, Key Messages, Format & Constraints, " +
			"and Success Metrics.",
		RolePreamble: "You are a creative marketing copywriter and brand strategist. Please produce the following:",
	},
	"meeting": {
		ID:          "meeting",
		Name:        "Meeting → Action Plan",
		Description: "Convert meeting notes into structured action plans",
		Icon:        "📋",
		SystemContext: "Transform this voice transcript of meeting notes into a structured prompt that will produce " +
			"a clear action plan. Include Meeting Summary, Key Decisions, Action Items with owners, " +
			"Follow-ups, and Next Steps.",
		RolePreamble: "You are a skilled project manager. Please process the following meeting notes into an action plan:",
	},
	"support": {
		ID:          "support",
		Name:        "Support → Troubleshooting",
		Description: "Turn support tickets into troubleshooting guides",
		Icon:        "🔧",
		SystemContext: "Transform this voice transcript of a support issue into a structured troubleshooting prompt. " +
			"Include Issue Description, Environment, Steps Already Tried, Expected vs Actual Behaviour, " +
			"Urgency & Impact, and Desired Resolution.",
		RolePreamble: "You are a senior technical support specialist. Please diagnose and help resolve the following issue:",
	},
	"research": {
		ID:          "research",
		Name:        "Research Brief",
		Description: "Structure research questions into comprehensive briefs",
		Icon:        "🔬",
		SystemContext: "Transform this voice transcript into a comprehensive research brief prompt. " +
			"Include Research Question, Background, Scope & Boundaries, Methodology, " +
			"Expected Deliverables, and Timeline.",
		RolePreamble: "You are a thorough research analyst. Please conduct the following research and deliver a comprehensive response:",
	},
}

// Lookup returns the config for a template id.
func Lookup(id string) (Config, bool) {
	cfg, ok := registry[id]
	return cfg, ok
}

// MustGet returns the config for a known template id and panics otherwise.
// Callers validate ids at the API boundary; an unknown id reaching this point
// is a programming error and should fail loudly, not fall back silently.
func MustGet(id string) Config {
	cfg, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("template: unknown template id %q", id))
	}
	return cfg
}

// ModelInstructions are appended to the AI-path system prompt per model target.
var ModelInstructions = map[string]string{
	"claude": "Format the output for Claude (Anthropic). " +
		"Use XML tags (e.g. <goal>, <context>) for structured sections where helpful. " +
		"Be explicit about the task, include all constraints, and end with a clear call-to-action.",
	"chatgpt": "Format the output for ChatGPT (OpenAI). " +
		"Use clear Markdown headings (##), numbered lists, and explicit step-by-step instructions. " +
		"Keep phrasing direct and action-oriented.",
	"universal": "Format the output for universal compatibility across modern AI assistants. " +
		"Use clean Markdown with ## headings and bullet lists. " +
		"Focus on clarity: any well-aligned LLM should be able to follow this prompt precisely.",
}

// VerbosityInstructions are appended to the AI-path system prompt per verbosity.
var VerbosityInstructions = map[string]string{
	"short": "Be concise. Keep the prompt to the essentials only — avoid extra context or explanation. " +
		"The output should be scannable in under 30 seconds.",
	"medium": "Balance completeness with brevity. Include all key sections but avoid repetition or padding. " +
		"Aim for a prompt that a professional would consider thorough but not bloated.",
	"detailed": "Be comprehensive. Include all relevant sections, examples where useful, edge cases, " +
		"and explicit success criteria. Err on the side of providing more context rather than less.",
}

// LanguageInstructions are appended to the AI-path system prompt per language.
var LanguageInstructions = map[string]string{
	"auto": "Match the language used in the transcript. If it is in Portuguese, output in Portuguese; if in English, output in English.",
	"en":   "Output the prompt entirely in English, regardless of the transcript language.",
	"pt":   "Output the prompt entirely in European Portuguese (pt-PT), regardless of the transcript language.",
}
