package gemini

import "strings"

var refusalPhrases = []string{
	"cannot fulfill",
	"cannot complete",
	"unable to process",
	"violates",
	"policy",
	"copyright",
	"intellectual property",
	"watermark removal",
	"not able to help",
	"cannot help with",
	"decline",
	"can't assist",
}

func isRefusal(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
