package extractor

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract_IntentDetection(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{
			"create from a coding transcript",
			"I need you to build a REST API in Node.js that accepts POST requests and stores data in MongoDB.",
			"create",
		},
		{
			"fix from a debugging transcript",
			"I have a bug in my React component where the state is not updating correctly when the user clicks the button.",
			"fix",
		},
		{
			"analyze from an analysis request",
			"Please analyze the performance of our e-commerce funnel and evaluate the conversion rates at each step.",
			"analyze",
		},
		{
			"explain intent",
			"Can you explain how HTTPS certificates work and describe the handshake process?",
			"explain",
		},
		{
			"general for vague transcripts",
			"I just want something about the thing we discussed.",
			"general",
		},
		{
			"empty transcript defaults to general",
			"",
			"general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.transcript)
			if got.PrimaryIntent != tt.want {
				t.Errorf("PrimaryIntent = %q, want %q", got.PrimaryIntent, tt.want)
			}
		})
	}
}

func TestExtract_IntentTableOrderWins(t *testing.T) {
	// "analyze" appears first in the text but "create" is earlier in the
	// vocabulary table. Earlier table position wins.
	result := Extract("Analyze the numbers and then build a dashboard.")
	if result.PrimaryIntent != "create" {
		t.Errorf("PrimaryIntent = %q, want create (table order tie-break)", result.PrimaryIntent)
	}
}

func TestExtract_OutputTypeDetection(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{
			"code output",
			"Write a Python function that sorts a list of dictionaries by a given key.",
			"code",
		},
		{
			"list output",
			"Give me a list of steps to deploy a Docker container to AWS.",
			"list",
		},
		{
			"email output",
			"I need to write a follow-up email to our client about the project delay.",
			"email",
		},
		{
			"default response",
			"Help me with my homework tonight please.",
			"response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.transcript)
			if got.OutputType != tt.want {
				t.Errorf("OutputType = %q, want %q", got.OutputType, tt.want)
			}
		})
	}
}

func TestExtract_TopicDetection(t *testing.T) {
	t.Run("technology", func(t *testing.T) {
		result := Extract("We need to set up a Kubernetes cluster for our microservice architecture.")
		if !contains(result.Topics, "technology") {
			t.Errorf("Topics = %v, want to contain technology", result.Topics)
		}
	})

	t.Run("marketing", func(t *testing.T) {
		result := Extract("Create a social media marketing campaign to promote our new product launch.")
		if !contains(result.Topics, "marketing") {
			t.Errorf("Topics = %v, want to contain marketing", result.Topics)
		}
	})

	t.Run("multiple topics in table order", func(t *testing.T) {
		result := Extract("Our software business needs a marketing push.")
		want := []string{"technology", "business", "marketing"}
		if !reflect.DeepEqual(result.Topics, want) {
			t.Errorf("Topics = %v, want %v", result.Topics, want)
		}
	})
}

func TestExtract_Constraints(t *testing.T) {
	result := Extract("Build a login page. It must use JWT authentication. Without using any third-party libraries.")
	if len(result.Constraints) == 0 {
		t.Fatal("expected at least one constraint")
	}
	for _, c := range result.Constraints {
		if len(c) >= 200 {
			t.Errorf("constraint %q exceeds 200 chars", c)
		}
	}
}

func TestExtract_ConstraintsCapAndDedup(t *testing.T) {
	// Nine distinct obligation phrases; the cap keeps the first six.
	parts := make([]string, 0, 9)
	for _, s := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota"} {
		parts = append(parts, "It must use the "+s+" module.")
	}
	result := Extract(strings.Join(parts, " "))
	if len(result.Constraints) != 6 {
		t.Errorf("got %d constraints, want 6", len(result.Constraints))
	}

	// Same phrase twice, differing only in case and spacing, dedupes to one.
	result = Extract("It must use JWT tokens. it must  use jwt tokens.")
	if len(result.Constraints) != 1 {
		t.Errorf("got %d constraints, want 1 after dedup: %v", len(result.Constraints), result.Constraints)
	}
}

func TestExtract_Entities(t *testing.T) {
	result := Extract("We are migrating from AWS to Google Cloud using Terraform.")
	if len(result.Entities) == 0 {
		t.Fatal("expected entities")
	}
	if !contains(result.Entities, "Google Cloud") {
		t.Errorf("Entities = %v, want to contain Google Cloud", result.Entities)
	}
	if !contains(result.Entities, "AWS") {
		t.Errorf("Entities = %v, want to contain AWS", result.Entities)
	}
}

func TestExtract_EntitiesSkipSentenceStart(t *testing.T) {
	// "Deploy" opens the second sentence and is an ordinary word here.
	result := Extract("We shipped the release. Deploy went fine with Jenkins today.")
	if contains(result.Entities, "Deploy") {
		t.Errorf("Entities = %v, should not contain sentence-initial Deploy", result.Entities)
	}
	if !contains(result.Entities, "Jenkins") {
		t.Errorf("Entities = %v, want to contain Jenkins", result.Entities)
	}
}

func TestExtract_EntitiesCap(t *testing.T) {
	names := []string{"Alpha", "Bravo", "Carlos", "Delta", "Echo", "Foxtro", "Golfo", "Hotel", "India", "Julia", "Kilos", "Limas"}
	result := Extract("The attendees were " + strings.Join(names, " and ") + " today.")
	if len(result.Entities) > 10 {
		t.Errorf("got %d entities, want at most 10", len(result.Entities))
	}
}

func TestExtract_AmbiguityScore(t *testing.T) {
	t.Run("vague short transcript scores high", func(t *testing.T) {
		result := Extract("Something about the data thing.")
		if result.AmbiguityScore <= 0.4 {
			t.Errorf("AmbiguityScore = %v, want > 0.4", result.AmbiguityScore)
		}
	})

	t.Run("clear detailed transcript scores low", func(t *testing.T) {
		result := Extract("I need to create a React component that renders a paginated table. " +
			"It should accept data as props, support sorting by column, and include " +
			"a search input that filters rows in real time. Use TypeScript and Tailwind CSS.")
		if result.AmbiguityScore >= 0.4 {
			t.Errorf("AmbiguityScore = %v, want < 0.4", result.AmbiguityScore)
		}
	})

	t.Run("always within [0,1]", func(t *testing.T) {
		inputs := []string{
			"",
			"maybe",
			"maybe something kind of like a thing or whatever, not sure, could be, you know, etc",
			strings.Repeat("word ", 500),
		}
		for _, in := range inputs {
			score := Extract(in).AmbiguityScore
			if score < 0 || score > 1 {
				t.Errorf("AmbiguityScore(%q) = %v, out of range", in, score)
			}
		}
	})

	t.Run("monotonic: prepending clear text never raises the score", func(t *testing.T) {
		vague := "Something about the data thing."
		clear := "I need you to build a complete REST API with authentication, database storage, " +
			"request validation, pagination, and integration tests, written in Go with full documentation. "
		short := Extract(vague).AmbiguityScore
		long := Extract(clear + vague).AmbiguityScore
		if long > short {
			t.Errorf("score rose from %v to %v after prepending clear text", short, long)
		}
	})
}

func TestExtract_WordCount(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       int
	}{
		{"five words", "One two three four five", 5},
		{"surrounding whitespace ignored", "  hello   world  ", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.transcript)
			if got.WordCount != tt.want {
				t.Errorf("WordCount = %d, want %d", got.WordCount, tt.want)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	transcript := "Please analyze our Q3 sales data from Salesforce and HubSpot. " +
		"It must exclude refunds. Maybe break it down by region, not sure."
	first := Extract(transcript)
	second := Extract(transcript)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	result := Extract("")
	if result.PrimaryIntent != "general" {
		t.Errorf("PrimaryIntent = %q, want general", result.PrimaryIntent)
	}
	if result.OutputType != "response" {
		t.Errorf("OutputType = %q, want response", result.OutputType)
	}
	if result.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", result.WordCount)
	}
	if len(result.Topics) != 0 || len(result.Constraints) != 0 || len(result.Entities) != 0 {
		t.Errorf("expected no topics/constraints/entities, got %+v", result)
	}
	// 0.4 for shortness + 0.15 for no recognized intent.
	if result.AmbiguityScore != 0.55 {
		t.Errorf("AmbiguityScore = %v, want 0.55", result.AmbiguityScore)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
