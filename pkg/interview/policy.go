package interview

// ReplyCompletes decides whether appending reply ends the interview.
func ReplyCompletes(reply Reply) bool {
	switch reply.Source {
	case SourceClosing:
		return true
	case SourceFallback, SourceRecovered:
		return false
	}
	return ContainsCompletionPhrase(reply.Text)
}

// TranscriptCompletes re-evaluates completion from stored AI messages, oldest
// first. The opening question and engine filler never count.
func TranscriptCompletes(aiMessages []string) bool {
	if len(aiMessages) < 2 {
		return false
	}
	last := aiMessages[len(aiMessages)-1]
	if IsFiller(last) {
		return false
	}
	return ContainsCompletionPhrase(last)
}
