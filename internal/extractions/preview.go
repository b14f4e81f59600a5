package extractions

// PreviewLength is the history-list truncation cutoff.
const PreviewLength = 100

// Preview returns the first min(len, limit) runes of text. The ellipsis is
// appended whenever the prefix reaches exactly the cutoff, even if the text
// is not actually longer.
func Preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) < limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
