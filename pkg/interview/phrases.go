package interview

import "strings"

// ClosingSentence is returned once the probe budget is spent.
const ClosingSentence = "Thank you for your participation! This interview is now complete."

// GenericContinuation replaces the reply when generation fails unexpectedly.
const GenericContinuation = "Thank you for sharing. What else would you like to add?"

// FallbackPhrases rotate, indexed by completed probes, when the model fails
// or answers with nothing usable. Order is fixed.
var FallbackPhrases = []string{
	"That's interesting. Can you tell me more?",
	"What else can you share about that?",
	"I'd love to hear more details.",
	"Could you elaborate on that?",
	"What makes you say that?",
}

// CompletionPhrases end an interview when found in the latest AI message.
//
// The set is coupled to the sentences above: ClosingSentence must keep
// matching it, and none of FallbackPhrases may. GenericContinuation does
// contain "thank you", so text the engine writes as filler is excluded from
// the check by IsFiller rather than by wording. Change the phrases and this
// set together.
var CompletionPhrases = []string{
	"thank you",
	"complete",
	"finished",
	"participation",
}

// FallbackPhrase picks the rotation entry for the given probe count.
func FallbackPhrase(completedProbes int) string {
	if completedProbes < 0 {
		completedProbes = 0
	}
	return FallbackPhrases[completedProbes%len(FallbackPhrases)]
}

// ContainsCompletionPhrase is a case-insensitive substring match against CompletionPhrases.
func ContainsCompletionPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range CompletionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// IsFiller reports whether text is one the engine writes in place of a model reply.
func IsFiller(text string) bool {
	if text == GenericContinuation {
		return true
	}
	for _, p := range FallbackPhrases {
		if text == p {
			return true
		}
	}
	return false
}
