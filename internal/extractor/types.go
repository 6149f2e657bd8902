package extractor

// ExtractedData holds everything the rule-based analysis derives from a
// transcript. All fields are fully determined by the input text.
type ExtractedData struct {
	// Primary detected action intent (create/analyze/fix/explain/…).
	PrimaryIntent string `json:"primaryIntent"`
	// Expected shape of the deliverable (code/list/document/…).
	OutputType string `json:"outputType"`
	// Domain topics detected (technology/business/marketing/…).
	Topics []string `json:"topics"`
	// Constraint phrases quoted verbatim from the transcript.
	Constraints []string `json:"constraints"`
	// Candidate named entities in first-seen order.
	Entities []string `json:"entities"`
	// 0–1 score where 1 = very ambiguous. Two-decimal precision.
	AmbiguityScore float64 `json:"ambiguityScore"`
	WordCount      int     `json:"wordCount"`
}
