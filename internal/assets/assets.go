package assets

// DefaultStyleName is the embedded style used when none is configured.
const DefaultStyleName = "chat"

// StyleNames lists the embedded styles, sorted.
func StyleNames() []string {
	return NewEmbeddedLoader().StyleNames()
}
