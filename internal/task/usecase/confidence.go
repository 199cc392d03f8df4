package usecase

import (
	"github.com/tidwall/gjson"

	"life-manager/pkg/openai"
)

// confidenceBase is the starting trust score for any parsed reply.
const confidenceBase = 0.8

// requiredTaskFields are the fields whose presence scales the confidence of
// a task reply.
var requiredTaskFields = []string{
	"title", "outcome", "section", "intensity", "tags", "dueDate", "estimatedTime",
}

// computeConfidence derives the processing confidence for a reply: a bonus
// when the model terminated normally, a penalty when it hit the output cap,
// scaled by the fraction of required fields present, clamped to [0,1].
func computeConfidence(finishReason string, doc gjson.Result) float64 {
	confidence := confidenceBase

	switch finishReason {
	case openai.FinishReasonStop:
		confidence += 0.1
	case openai.FinishReasonLength:
		confidence -= 0.2
	}

	if doc.Get("isTask").Bool() {
		present := 0
		for _, field := range requiredTaskFields {
			if fieldPresent(doc.Get(field)) {
				present++
			}
		}
		confidence *= float64(present) / float64(len(requiredTaskFields))
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// fieldPresent reports whether a reply field counts as present and
// non-empty. Zero numbers count as absent, matching the schema's lower
// bounds of 1.
func fieldPresent(v gjson.Result) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return false
	}
	if v.Type == gjson.Number {
		return v.Float() != 0
	}
	return v.String() != ""
}
