package template

// A ParserOptFn configures a *Parse when constructing it.
type ParserOptFn func(*Parse)

// WithFn makes fn available to every view as name.
func WithFn(name string, fn any) ParserOptFn {
	return func(p *Parse) { p.AddFn(name, fn) }
}
