package formatter

import (
	"strings"
	"testing"

	"github.com/sword9322/vexgen/internal/extractor"
	"github.com/sword9322/vexgen/internal/template"
)

// clearTranscript has over 50 words, a detectable intent, and no vague
// phrasing, so its ambiguity score stays at zero.
const clearTranscript = "Create a detailed project plan for migrating our billing service from the legacy platform to the new cloud environment, including a list of milestones, owners, and risks, and make sure the plan must be ready before the end of the quarter so the finance team can review it during the planning meeting next week."

const vagueTranscript = "Something about the data thing."

func buildFor(t *testing.T, transcript string, opts Options) string {
	t.Helper()
	ex := extractor.Extract(transcript)
	return Build(transcript, ex, opts)
}

func defaultOptions(tpl string) Options {
	return Options{Template: tpl, ModelTarget: "universal", Verbosity: "medium", Language: "en"}
}

func TestBuildContainsMarkdownHeadings(t *testing.T) {
	for _, id := range template.IDs {
		for _, verbosity := range []string{"short", "medium", "detailed"} {
			t.Run(id+"/"+verbosity, func(t *testing.T) {
				opts := defaultOptions(id)
				opts.Verbosity = verbosity
				out := buildFor(t, clearTranscript, opts)

				headings := 0
				for _, ln := range strings.Split(out, "\n") {
					if strings.HasPrefix(ln, "## ") {
						headings++
					}
				}
				if headings == 0 {
					t.Fatalf("output has no second-level headings:\n%s", out)
				}
			})
		}
	}
}

func TestBuildTemplateHeadings(t *testing.T) {
	tests := []struct {
		template string
		heading  string
	}{
		{"general", "## Expected Output"},
		{"coding", "## Goal"},
		{"marketing", "## Campaign Goal"},
		{"meeting", "## Action Items"},
		{"support", "## Issue Description"},
		{"research", "## Research Question"},
	}
	for _, tt := range tests {
		for _, verbosity := range []string{"short", "medium", "detailed"} {
			t.Run(tt.template+"/"+verbosity, func(t *testing.T) {
				opts := defaultOptions(tt.template)
				opts.Verbosity = verbosity
				out := buildFor(t, clearTranscript, opts)
				if !strings.Contains(out, tt.heading) {
					t.Errorf("missing %q:\n%s", tt.heading, out)
				}
			})
		}
	}
}

func TestBuildIncludesTemplateIdentity(t *testing.T) {
	for _, id := range template.IDs {
		t.Run(id, func(t *testing.T) {
			tpl := template.MustGet(id)
			out := buildFor(t, clearTranscript, defaultOptions(id))
			if !strings.Contains(out, tpl.Name) {
				t.Errorf("output does not mention template name %q", tpl.Name)
			}
			if !strings.Contains(out, "("+tpl.ID+")") {
				t.Errorf("output does not mention template id %q", tpl.ID)
			}
		})
	}
}

func TestBuildSuccessSectionOnlyAtDetailed(t *testing.T) {
	for _, id := range template.IDs {
		heading := "## Success Criteria"
		if id == "marketing" {
			heading = "## Success Metrics"
		}
		t.Run(id, func(t *testing.T) {
			for _, verbosity := range []string{"short", "medium"} {
				opts := defaultOptions(id)
				opts.Verbosity = verbosity
				if out := buildFor(t, clearTranscript, opts); strings.Contains(out, heading) {
					t.Errorf("%s output should not contain %q:\n%s", verbosity, heading, out)
				}
			}

			opts := defaultOptions(id)
			opts.Verbosity = "detailed"
			if out := buildFor(t, clearTranscript, opts); !strings.Contains(out, heading) {
				t.Errorf("detailed output missing %q:\n%s", heading, out)
			}
		})
	}
}

func TestBuildConstraintBullets(t *testing.T) {
	// clearTranscript carries a "must be ready before the end of the
	// quarter" constraint which has to surface as a bullet.
	out := buildFor(t, clearTranscript, defaultOptions("general"))
	if !strings.Contains(out, "## Constraints") {
		t.Fatalf("expected a constraints section:\n%s", out)
	}
	if !strings.Contains(out, "\n- must") {
		t.Errorf("expected the extracted constraint as a bullet:\n%s", out)
	}
}

func TestBuildClarifyingQuestions(t *testing.T) {
	t.Run("vague transcript gets questions", func(t *testing.T) {
		out := buildFor(t, vagueTranscript, defaultOptions("general"))
		if !strings.Contains(out, "## Clarifying Questions") {
			t.Fatalf("expected clarifying questions for vague transcript:\n%s", out)
		}
		if !strings.Contains(out, "1. ") || !strings.Contains(out, "2. ") {
			t.Errorf("expected at least two numbered questions:\n%s", out)
		}
	})

	t.Run("clear transcript gets none", func(t *testing.T) {
		out := buildFor(t, clearTranscript, defaultOptions("general"))
		if strings.Contains(out, "## Clarifying Questions") {
			t.Errorf("did not expect clarifying questions for clear transcript:\n%s", out)
		}
	})
}

func TestBuildVerbosityOrdering(t *testing.T) {
	for _, id := range template.IDs {
		t.Run(id, func(t *testing.T) {
			lengths := make(map[string]int, 3)
			for _, verbosity := range []string{"short", "medium", "detailed"} {
				opts := defaultOptions(id)
				opts.Verbosity = verbosity
				lengths[verbosity] = len(buildFor(t, clearTranscript, opts))
			}
			if lengths["short"] >= lengths["medium"] {
				t.Errorf("short (%d) not shorter than medium (%d)", lengths["short"], lengths["medium"])
			}
			if lengths["medium"] > lengths["detailed"] {
				t.Errorf("medium (%d) longer than detailed (%d)", lengths["medium"], lengths["detailed"])
			}
		})
	}
}

func TestBuildNoEmptySections(t *testing.T) {
	// Every heading block must carry body text on the lines after it.
	for _, transcript := range []string{clearTranscript, vagueTranscript, "   "} {
		for _, id := range template.IDs {
			opts := defaultOptions(id)
			out := buildFor(t, transcript, opts)
			for _, block := range strings.Split(out, "\n\n") {
				if strings.HasPrefix(block, "## ") && strings.Count(block, "\n") == 0 {
					t.Errorf("template %s emitted empty section %q", id, block)
				}
			}
		}
	}
}

func TestBuildModelTargets(t *testing.T) {
	t.Run("claude wraps transcript in tags", func(t *testing.T) {
		opts := defaultOptions("general")
		opts.ModelTarget = "claude"
		out := buildFor(t, clearTranscript, opts)
		if !strings.Contains(out, "<transcript>") || !strings.Contains(out, "</transcript>") {
			t.Errorf("expected transcript tags for claude target:\n%s", out)
		}
		if !strings.Contains(out, phrasesEN.callToAction) {
			t.Errorf("expected closing call to action for claude target")
		}
	})

	t.Run("chatgpt gets numbered directive", func(t *testing.T) {
		opts := defaultOptions("general")
		opts.ModelTarget = "chatgpt"
		out := buildFor(t, clearTranscript, opts)
		if !strings.Contains(out, phrasesEN.directiveGPT) {
			t.Errorf("expected step-by-step directive for chatgpt target:\n%s", out)
		}
	})

	t.Run("universal uses quoted transcript", func(t *testing.T) {
		out := buildFor(t, clearTranscript, defaultOptions("general"))
		if strings.Contains(out, "<transcript>") {
			t.Errorf("did not expect transcript tags for universal target")
		}
		if !strings.Contains(out, "> Create a detailed project plan") {
			t.Errorf("expected blockquoted transcript:\n%s", out)
		}
	})
}

func TestBuildLanguages(t *testing.T) {
	t.Run("explicit pt", func(t *testing.T) {
		opts := defaultOptions("general")
		opts.Language = "pt"
		out := buildFor(t, clearTranscript, opts)
		if !strings.Contains(out, "## Objetivo") {
			t.Errorf("expected Portuguese headings:\n%s", out)
		}
		if !strings.Contains(out, "_Modelo:") {
			t.Errorf("expected Portuguese footer:\n%s", out)
		}
	})

	t.Run("auto detects portuguese", func(t *testing.T) {
		opts := defaultOptions("general")
		opts.Language = "auto"
		transcript := "Preciso que você crie uma apresentação sobre o novo produto para a reunião de sexta-feira, não pode ser muito longa."
		out := buildFor(t, transcript, opts)
		if !strings.Contains(out, "_Modelo:") {
			t.Errorf("expected auto-detected Portuguese output:\n%s", out)
		}
	})

	t.Run("auto keeps english for english text", func(t *testing.T) {
		opts := defaultOptions("general")
		opts.Language = "auto"
		out := buildFor(t, clearTranscript, opts)
		if !strings.Contains(out, "_Template:") {
			t.Errorf("expected English output:\n%s", out)
		}
	})
}

func TestBuildDeterministic(t *testing.T) {
	opts := defaultOptions("coding")
	ex := extractor.Extract(clearTranscript)
	first := Build(clearTranscript, ex, opts)
	second := Build(clearTranscript, ex, opts)
	if first != second {
		t.Fatal("identical inputs produced different output")
	}
}

func TestBuildEmptyTranscriptPlaceholder(t *testing.T) {
	out := buildFor(t, "   ", defaultOptions("general"))
	if !strings.Contains(out, phrasesEN.emptyTranscript) {
		t.Errorf("expected placeholder for blank transcript:\n%s", out)
	}
}

func TestBuildPanicsOnUnknownVerbosity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown verbosity")
		}
	}()
	opts := defaultOptions("general")
	opts.Verbosity = "verbose"
	Build(clearTranscript, extractor.Extract(clearTranscript), opts)
}
