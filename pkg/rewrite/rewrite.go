package rewrite

// Result is the outcome of rewriting one buffer.
type Result struct {
	Content      string
	StyleObjects int
	Identifiers  int
}

// Changed reports whether the rewrite produced different content.
func (r Result) Changed(original string) bool {
	return r.Content != original
}

// Rewriter applies the style object conversion followed by the identifier
// conversion.
type Rewriter struct {
	table Table
}

// New creates a Rewriter for the given table. A nil table means DefaultTable.
func New(table Table) *Rewriter {
	if table == nil {
		table = DefaultTable()
	}
	return &Rewriter{table: table}
}

// Rewrite converts content. It never fails; text it does not recognize is
// passed through untouched.
func (r *Rewriter) Rewrite(content string) Result {
	out, styles := ConvertStyleObjects(content)
	out, idents := ReplaceIdentifiers(out, r.table)
	return Result{
		Content:      out,
		StyleObjects: styles,
		Identifiers:  idents,
	}
}
