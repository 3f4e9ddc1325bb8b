package printer

import "strings"

// render converts the writer's recorded low-level write events into final text (C7), honoring
// the newline, tab/space, and indent-width policy from opts. This is the only place indentation
// and newlines become concrete characters; everything upstream reasons about columns, not bytes.
func render(items []writeItem, opts Options) string {
	indentUnit := "\t"
	if !opts.UseTabs {
		indentUnit = strings.Repeat(" ", opts.IndentWidth)
	}

	var sb strings.Builder
	for _, item := range items {
		switch v := item.(type) {
		case writeIndent:
			for i := 0; i < v.n; i++ {
				sb.WriteString(indentUnit)
			}
		case writeNewLine:
			sb.WriteString(opts.NewLineText)
		case writeTab:
			sb.WriteByte('\t')
		case writeSpace:
			sb.WriteByte(' ')
		case writeString:
			sb.WriteString(v.s)
		}
	}
	return sb.String()
}
