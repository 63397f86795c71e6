package tokenizer

// BytesPerToken is the empirically-derived average bytes per token across
// chat-style English text.
const BytesPerToken = 4.7

// EstimateTokensFromBytes estimates token count from byte length without
// constructing an encoding table. Integer arithmetic on the ~4.7 bytes/token
// ratio; this is a rough estimate, use a real Tokenizer for exact counts.
func EstimateTokensFromBytes(byteCount int) int {
	if byteCount <= 0 {
		return 0
	}
	return (byteCount * 10) / 47
}

// EstimateTokens estimates the token count of s.
func EstimateTokens(s string) int {
	return EstimateTokensFromBytes(len(s))
}
