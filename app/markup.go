package app

import (
	"strings"
)

const codeFence = "```"

// MaxContentLength is the longest message content discord accepts.
const MaxContentLength = 2000

func bold(str string) string {
	return "**" + str + "**"
}

func codeBlock(content string, lang string) string {
	var builder strings.Builder
	builder.WriteString(codeFence)
	builder.WriteString(lang)
	builder.WriteByte('\n')
	builder.WriteString(strings.ReplaceAll(content, codeFence, "'''"))
	builder.WriteByte('\n')
	builder.WriteString(codeFence)
	return builder.String()
}

func field(name string, value string) string {
	return bold(name+":") + " " + value
}

// truncateContent cuts str down to size runes, closing a code block left open by the cut.
func truncateContent(str string, size int) string {
	runes := []rune(str)
	if len(runes) <= size {
		return str
	}

	const ellipsis = "..."
	closer := "\n" + codeFence

	cut := string(runes[:size-len(ellipsis)])
	if strings.Count(cut, codeFence)%2 == 1 {
		cut = string(runes[:size-len(ellipsis)-len(closer)])
		if strings.Count(cut, codeFence)%2 == 1 {
			return cut + ellipsis + closer
		}
	}
	return cut + ellipsis
}
