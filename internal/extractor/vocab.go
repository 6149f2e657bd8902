package extractor

import "regexp"

// vocabEntry pairs a tag with the phrases that signal it. Intent and output
// type detection is first-match-wins in declaration order, so these live in
// ordered slices rather than maps. Downstream template selection depends on
// the ordering; do not re-rank.
type vocabEntry struct {
	tag     string
	phrases []string
}

var intentVocab = []vocabEntry{
	{"create", []string{
		"create", "build", "make", "design", "develop", "generate", "write", "draft",
		"produce", "compose", "construct", "implement", "set up", "code", "program",
	}},
	{"analyze", []string{
		"analyze", "analyse", "evaluate", "assess", "review", "examine", "investigate",
		"audit", "inspect", "measure", "compare", "benchmark",
	}},
	{"fix", []string{
		"fix", "debug", "repair", "resolve", "solve", "troubleshoot", "correct", "patch",
		"address", "handle", "deal with",
	}},
	{"explain", []string{
		"explain", "describe", "clarify", "summarize", "summarise", "outline", "define",
		"document", "illustrate", "teach", "show me",
	}},
	{"optimize", []string{
		"optimize", "optimise", "improve", "enhance", "refactor", "refine", "upgrade",
		"speed up", "streamline", "simplify", "clean up",
	}},
	{"convert", []string{
		"convert", "transform", "translate", "migrate", "change", "adapt", "rewrite",
		"format", "port", "move",
	}},
	{"plan", []string{
		"plan", "organize", "organise", "structure", "schedule", "arrange", "prioritize",
		"prioritise", "coordinate", "roadmap",
	}},
	{"research", []string{
		"research", "find", "search", "discover", "explore", "look up", "gather",
		"collect", "survey", "identify",
	}},
}

var outputVocab = []vocabEntry{
	{"code", []string{
		"code", "function", "class", "api", "script", "program", "application", "component",
		"module", "library", "algorithm", "database", "query", "endpoint", "microservice",
		"test", "unit test",
	}},
	{"list", []string{
		"list", "bullet", "items", "steps", "tasks", "checklist", "enumeration",
		"points", "action items",
	}},
	{"document", []string{
		"document", "report", "summary", "outline", "brief", "overview", "write-up",
		"article", "essay", "documentation", "readme", "spec",
	}},
	{"email", []string{"email", "message", "response", "reply", "letter", "communication", "newsletter"}},
	{"analysis", []string{
		"analysis", "evaluation", "assessment", "review", "comparison", "breakdown",
		"findings", "insights",
	}},
	{"plan", []string{"plan", "roadmap", "strategy", "approach", "proposal", "action items", "next steps"}},
	{"presentation", []string{"presentation", "slides", "deck", "pitch", "slideshow"}},
}

var topicVocab = []vocabEntry{
	{"technology", []string{
		"software", "code", "programming", "tech", "algorithm", "database", "api",
		"web", "mobile", "cloud", "ai", "machine learning", "devops", "kubernetes",
		"docker", "microservice",
	}},
	{"business", []string{
		"business", "company", "revenue", "profit", "market", "customer", "client",
		"sales", "product", "strategy", "startup", "enterprise", "b2b", "b2c",
	}},
	{"marketing", []string{
		"marketing", "campaign", "brand", "audience", "content", "social media", "seo",
		"ads", "promotion", "engagement", "conversion", "funnel", "lead",
	}},
	{"support", []string{
		"issue", "problem", "bug", "error", "ticket", "complaint", "support",
		"broken", "not working", "fails", "crash", "outage",
	}},
	{"research", []string{
		"research", "study", "findings", "data", "evidence", "sources", "literature",
		"hypothesis", "experiment", "survey", "statistics",
	}},
	{"meeting", []string{
		"meeting", "call", "discussion", "agenda", "attendees", "minutes", "decisions",
		"action items", "standup", "sync", "retrospective",
	}},
}

// Hedging phrases that indicate the speaker is unsure what they want.
var ambiguityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(something|somehow|maybe|perhaps|probably|possibly|i think|i guess|not sure|kind of|sort of|a bit|kinda|sorta)\b`),
	regexp.MustCompile(`(?i)\b(etc\.?|and so on|and stuff|or whatever|things like that|you know|like)\b`),
	regexp.MustCompile(`(?i)\b(a thing|some thing|that thing|this thing|the thing|whatever)\b`),
	regexp.MustCompile(`(?i)\b(not sure|unclear|might|could be|possibly|maybe)\b`),
}

// Trigger phrases that open a constraint: obligations, exclusions,
// quantitative bounds, exclusivity, deadlines. Each captures up to 60–80
// trailing characters, stopping at sentence-ending punctuation or a newline.
var constraintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:must|should|need to|have to|required?|necessary|needs to)\b[^.!?\n]{3,80}`),
	regexp.MustCompile(`(?i)\b(?:without|except|excluding|not including|avoid|don'?t use|no)\b[^.!?\n]{3,60}`),
	regexp.MustCompile(`(?i)\b(?:within|less than|more than|at least|at most|maximum|minimum|max|min)\b[^.!?\n]{3,60}`),
	regexp.MustCompile(`(?i)\b(?:only|just|specifically|exclusively|strictly)\b[^.!?\n]{3,60}`),
	regexp.MustCompile(`(?i)\b(?:deadline|by|before|until|no later than)\b[^.!?\n]{3,60}`),
}

var (
	capitalizedRun = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3}\b`)
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)
