// Package formatter assembles the deterministic Markdown prompt from a
// transcript, its extracted data, and the caller's generation options. It
// performs no I/O and depends on nothing but the static template registry;
// identical inputs always produce byte-identical output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/sword9322/vexgen/internal/extractor"
	"github.com/sword9322/vexgen/internal/template"
)

// Transcripts scoring above this are considered underspecified enough to
// warrant a Clarifying Questions section.
const ambiguityThreshold = 0.4

// Options selects the template and styling for one generation. All fields
// must hold values already validated at the API boundary.
type Options struct {
	Template    string
	ModelTarget string
	Verbosity   string
	Language    string
}

// Accepted values for the styling options.
var (
	ModelTargets = []string{"claude", "chatgpt", "universal"}
	Verbosities  = []string{"short", "medium", "detailed"}
	Languages    = []string{"auto", "en", "pt"}
)

const (
	levelShort = iota
	levelMedium
	levelDetailed
)

func verbosityLevel(v string) int {
	switch v {
	case "short":
		return levelShort
	case "medium":
		return levelMedium
	case "detailed":
		return levelDetailed
	}
	panic(fmt.Sprintf("formatter: unknown verbosity %q", v))
}

// line is one body line gated by a minimum verbosity level.
type line struct {
	min  int
	text string
}

type section struct {
	key   string
	lines []line
}

func (s *section) add(min int, text string) {
	s.lines = append(s.lines, line{min: min, text: text})
}

type builder struct {
	ex   extractor.ExtractedData
	opts Options
	p    *phrases
	text string // whitespace-collapsed transcript
}

// Build renders the deterministic prompt. Sections are emitted in fixed
// template order, separated by single blank lines; empty sections are
// dropped rather than rendered as bare headings.
func Build(transcript string, ex extractor.ExtractedData, opts Options) string {
	tpl := template.MustGet(opts.Template)
	lang := resolveLanguage(opts.Language, transcript)
	lvl := verbosityLevel(opts.Verbosity)

	b := &builder{
		ex:   ex,
		opts: opts,
		p:    phrasesFor(lang),
		text: cleanTranscript(transcript, phrasesFor(lang)),
	}

	sections := b.sections(tpl.ID)
	if ex.AmbiguityScore > ambiguityThreshold {
		sections = append(sections, b.clarifyingSection())
	}

	blocks := []string{b.preamble(tpl)}
	for _, sec := range sections {
		var body []string
		for _, ln := range sec.lines {
			if lvl >= ln.min {
				body = append(body, ln.text)
			}
		}
		if len(body) == 0 {
			continue
		}
		blocks = append(blocks, "## "+b.p.headings[sec.key]+"\n"+strings.Join(body, "\n"))
	}

	if b.opts.ModelTarget == "claude" {
		blocks = append(blocks, b.p.callToAction)
	}
	blocks = append(blocks, fmt.Sprintf(b.p.footer, tpl.Name, tpl.ID))

	return strings.Join(blocks, "\n\n")
}

func cleanTranscript(transcript string, p *phrases) string {
	cleaned := strings.Join(strings.Fields(transcript), " ")
	if cleaned == "" {
		return p.emptyTranscript
	}
	return cleaned
}

func (b *builder) preamble(tpl template.Config) string {
	if pt, ok := b.p.preambles[tpl.ID]; ok {
		return pt
	}
	return tpl.RolePreamble
}

func (b *builder) sections(templateID string) []section {
	switch templateID {
	case "general":
		return b.generalSections()
	case "coding":
		return b.codingSections()
	case "marketing":
		return b.marketingSections()
	case "meeting":
		return b.meetingSections()
	case "support":
		return b.supportSections()
	case "research":
		return b.researchSections()
	}
	panic(fmt.Sprintf("formatter: no section layout for template %q", templateID))
}

// goalSection is the opening section every template shares: it restates the
// detected intent and output type and embeds the cleaned transcript.
func (b *builder) goalSection(key string) section {
	s := section{key: key}
	s.add(levelShort, fmt.Sprintf(b.p.taskLine, b.ex.PrimaryIntent, b.ex.OutputType))
	s.add(levelShort, b.p.requestLead)
	s.add(levelShort, b.transcriptBlock())
	if len(b.ex.Topics) > 0 {
		s.add(levelMedium, fmt.Sprintf(b.p.topicsLine, strings.Join(b.ex.Topics, ", ")))
	}
	s.add(levelMedium, b.directive())
	return s
}

func (b *builder) transcriptBlock() string {
	if b.opts.ModelTarget == "claude" {
		return "<transcript>" + b.text + "</transcript>"
	}
	return "> " + b.text
}

func (b *builder) directive() string {
	switch b.opts.ModelTarget {
	case "chatgpt":
		return b.p.directiveGPT
	case "claude", "universal":
		return b.p.directive
	}
	panic(fmt.Sprintf("formatter: unknown model target %q", b.opts.ModelTarget))
}

// constraintLines renders the extracted constraint phrases as a bulleted
// list under the given lead, or nothing at all when none were found.
func (b *builder) constraintLines(lead string) []line {
	if len(b.ex.Constraints) == 0 {
		return nil
	}
	lines := []line{{min: levelShort, text: lead}}
	for _, c := range b.ex.Constraints {
		lines = append(lines, line{min: levelShort, text: "- " + c})
	}
	return lines
}

// successSection is the verbosity-gated closing section; it only renders at
// detailed.
func (b *builder) successSection() section {
	s := section{key: "success"}
	s.add(levelDetailed, b.p.successAddressed)
	s.add(levelDetailed, fmt.Sprintf(b.p.successUsable, b.ex.OutputType))
	if len(b.ex.Constraints) > 0 {
		s.add(levelDetailed, b.p.successConstraints)
	}
	return s
}

func (b *builder) generalSections() []section {
	goal := b.goalSection("goal")

	ctx := section{key: "context"}
	if len(b.ex.Entities) > 0 {
		ctx.add(levelMedium, fmt.Sprintf(b.p.entitiesLine, strings.Join(b.ex.Entities, ", ")))
	}
	ctx.add(levelDetailed, b.p.contextDetail)

	cons := section{key: "constraints", lines: b.constraintLines(b.p.constraintsLead)}

	out := section{key: "expectedOutput"}
	out.add(levelShort, fmt.Sprintf(b.p.expectedOutput, b.ex.OutputType))
	out.add(levelMedium, b.p.outputGuidance)

	return []section{goal, ctx, cons, out, b.successSection()}
}

func (b *builder) codingSections() []section {
	goal := b.goalSection("goal")

	tech := section{key: "techContext"}
	if len(b.ex.Entities) > 0 {
		tech.add(levelMedium, fmt.Sprintf(b.p.entitiesLine, strings.Join(b.ex.Entities, ", ")))
	}
	tech.add(levelDetailed, b.p.stackLine)

	req := section{key: "requirements", lines: b.constraintLines(b.p.constraintsLead)}

	ioSpec := section{key: "ioSpec"}
	ioSpec.add(levelShort, fmt.Sprintf(b.p.ioSpecLine, b.ex.OutputType))

	style := section{key: "codeStyle"}
	style.add(levelMedium, b.p.codeStyleLine)
	style.add(levelDetailed, b.p.codeStyleDetail)

	return []section{goal, tech, req, ioSpec, style, b.successSection()}
}

func (b *builder) marketingSections() []section {
	goal := b.goalSection("campaignGoal")

	audience := section{key: "audience"}
	audience.add(levelMedium, b.p.audienceLine)

	voice := section{key: "brandVoice"}
	voice.add(levelMedium, b.p.brandVoiceLine)

	messages := section{key: "keyMessages"}
	messages.add(levelShort, b.p.keyMessagesLine)
	if len(b.ex.Entities) > 0 {
		messages.add(levelMedium, fmt.Sprintf(b.p.entitiesLine, strings.Join(b.ex.Entities, ", ")))
	}

	format := section{key: "formatConstraints"}
	format.add(levelShort, fmt.Sprintf(b.p.formatLine, b.ex.OutputType))
	format.lines = append(format.lines, b.constraintLines(b.p.constraintsLead)...)

	metrics := section{key: "successMetrics"}
	metrics.add(levelDetailed, b.p.metricsCovered)
	metrics.add(levelDetailed, b.p.metricsMeasured)

	return []section{goal, audience, voice, messages, format, metrics}
}

func (b *builder) meetingSections() []section {
	summary := b.goalSection("meetingSummary")
	summary.add(levelMedium, b.p.meetingSummaryLine)

	decisions := section{key: "keyDecisions"}
	decisions.add(levelMedium, b.p.keyDecisionsLine)

	actions := section{key: "actionItems"}
	actions.add(levelShort, b.p.actionItemsLine)
	if len(b.ex.Entities) > 0 {
		actions.add(levelMedium, fmt.Sprintf(b.p.peopleLine, strings.Join(b.ex.Entities, ", ")))
	}

	followUps := section{key: "followUps", lines: b.constraintLines(b.p.followUpsLead)}
	followUps.add(levelMedium, b.p.followUpsLine)

	next := section{key: "nextSteps"}
	next.add(levelMedium, b.p.nextStepsLine)

	return []section{summary, decisions, actions, followUps, next, b.successSection()}
}

func (b *builder) supportSections() []section {
	issue := b.goalSection("issue")

	env := section{key: "environment"}
	if len(b.ex.Entities) > 0 {
		env.add(levelMedium, fmt.Sprintf(b.p.systemsLine, strings.Join(b.ex.Entities, ", ")))
	}
	env.add(levelDetailed, b.p.environmentDetail)

	tried := section{key: "stepsTried"}
	tried.add(levelMedium, b.p.stepsTriedLine)

	expected := section{key: "expectedVsActual"}
	expected.add(levelMedium, b.p.expectedVsActualLine)

	urgency := section{key: "urgency"}
	urgency.add(levelMedium, b.p.urgencyLine)

	resolution := section{key: "resolution"}
	resolution.add(levelShort, b.p.resolutionLine)
	resolution.lines = append(resolution.lines, b.constraintLines(b.p.constraintsLead)...)

	return []section{issue, env, tried, expected, urgency, resolution, b.successSection()}
}

func (b *builder) researchSections() []section {
	question := b.goalSection("researchQuestion")

	background := section{key: "background"}
	if len(b.ex.Entities) > 0 {
		background.add(levelMedium, fmt.Sprintf(b.p.entitiesLine, strings.Join(b.ex.Entities, ", ")))
	}
	background.add(levelDetailed, b.p.backgroundLine)

	scope := section{key: "scope"}
	scope.add(levelMedium, b.p.scopeLine)
	scope.lines = append(scope.lines, b.constraintLines(b.p.constraintsLead)...)

	method := section{key: "methodology"}
	method.add(levelMedium, b.p.methodologyLine)

	deliverables := section{key: "deliverables"}
	deliverables.add(levelShort, fmt.Sprintf(b.p.expectedOutput, b.ex.OutputType))

	timeline := section{key: "timeline"}
	timeline.add(levelMedium, b.p.timelineLine)

	return []section{question, background, scope, method, deliverables, timeline, b.successSection()}
}

// clarifyingSection probes the vaguest aspects of an underspecified
// transcript with 2–4 deterministic questions.
func (b *builder) clarifyingSection() section {
	var qs []string
	if b.ex.WordCount < 30 {
		qs = append(qs, b.p.qScope)
	}
	if len(b.ex.Constraints) == 0 {
		qs = append(qs, b.p.qConstraints)
	}
	if len(b.ex.Entities) == 0 {
		qs = append(qs, b.p.qSpecifics)
	}
	qs = append(qs, b.p.qAudience)
	if len(qs) > 4 {
		qs = qs[:4]
	}
	if len(qs) < 2 {
		qs = append(qs, b.p.qSuccess)
	}

	s := section{key: "clarifying"}
	for i, q := range qs {
		s.add(levelShort, fmt.Sprintf("%d. %s", i+1, q))
	}
	return s
}
