// Package enhancer is the AI-backed prompt writer. It asks an OpenAI model to
// produce the structured prompt directly; callers fall back to the
// deterministic formatter when it returns an error.
package enhancer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/sword9322/vexgen/internal/formatter"
	"github.com/sword9322/vexgen/internal/template"
)

const temperature = 0.4

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &c, model: model}
}

// Enhance asks the model for a structured prompt built from the transcript.
// An empty completion is reported as an error so the caller can fall back.
func (c *Client) Enhance(ctx context.Context, transcript string, opts formatter.Options) (string, error) {
	user := fmt.Sprintf("Transform this voice transcript into a structured, high-quality prompt:\n\n\"\"\"\n%s\n\"\"\"", transcript)

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(maxOutputTokens(opts.Verbosity)),
		Temperature:     openai.Float(temperature),
		Instructions:    openai.String(instructions(opts)),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(user, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai call: %w", err)
	}

	out := strings.TrimSpace(resp.OutputText())
	if out == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return out, nil
}

// instructions assembles the system prompt from the template registry's
// per-template context and the styling instruction strings.
func instructions(opts formatter.Options) string {
	tpl := template.MustGet(opts.Template)
	return strings.Join([]string{
		"You are an expert prompt engineer specialising in crafting high-quality, structured prompts for AI assistants.",
		"",
		"TASK: " + tpl.SystemContext,
		"",
		"OUTPUT MODEL: " + template.ModelInstructions[opts.ModelTarget],
		"",
		"VERBOSITY: " + template.VerbosityInstructions[opts.Verbosity],
		"",
		"LANGUAGE: " + template.LanguageInstructions[opts.Language],
		"",
		"FORMAT RULES:",
		"- Use Markdown with ## headings for each section",
		"- Be specific and actionable — avoid generic filler",
		"- Always end with a ## Clarifying Questions section IF there are genuinely ambiguous aspects",
		"- Do NOT add a preamble like \"Here is your prompt:\" — output ONLY the prompt itself",
	}, "\n")
}

func maxOutputTokens(verbosity string) int64 {
	switch verbosity {
	case "short":
		return 600
	case "medium":
		return 1200
	default:
		return 2000
	}
}
