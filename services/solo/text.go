package solo

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	codeFenceRe   = regexp.MustCompile("(?s)```[a-zA-Z]*\n?|```")
	leadingMetaRe = regexp.MustCompile(`(?i)^(sure[,!.]?|here( is|'s) (a|the|your) [^:\n]*:)\s*`)
	spaceRunRe    = regexp.MustCompile(`[ \t]{2,}`)
)

// stripHTML removes markup so only readable text is sent to the model.
func stripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// cleanAssistOutput strips code fences and chatty preambles the model
// sometimes adds despite the prompt.
func cleanAssistOutput(s string) string {
	s = codeFenceRe.ReplaceAllString(s, "")
	s = leadingMetaRe.ReplaceAllString(strings.TrimSpace(s), "")
	return strings.TrimSpace(s)
}
