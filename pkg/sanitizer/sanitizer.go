package sanitizer

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// NormalizeISBN prepares a raw input line for tokenization.
func NormalizeISBN(input string) string {
	p := Pipeline{
		StripWhitespace,
	}
	return p.Apply(input)
}
