package search

// Option is one selectable entry of a host list. The host owns the option;
// the filter only ever flips its visibility.
type Option struct {
	Text  string
	Value any

	hidden bool
}

// NewOption returns a visible option.
func NewOption(text string, value any) *Option {
	return &Option{Text: text, Value: value}
}

// Visible reports whether the option passes the current filter.
func (o *Option) Visible() bool {
	return o != nil && !o.hidden
}

// Active reports whether keyboard navigation may land on the option.
func (o *Option) Active() bool {
	return o.Visible()
}

func (o *Option) setVisible(visible bool) {
	if o == nil {
		return
	}
	o.hidden = !visible
}

// ScrollAlign selects where the host places an option when scrolling it into
// view.
type ScrollAlign int

const (
	// ScrollAlignNearest scrolls the minimum distance.
	ScrollAlignNearest ScrollAlign = iota
	// ScrollAlignEnd places the option on the bottom edge of the viewport,
	// keeping it clear of a sticky search field pinned above the list.
	ScrollAlignEnd
)

func (a ScrollAlign) String() string {
	switch a {
	case ScrollAlignEnd:
		return "end"
	default:
		return "nearest"
	}
}

// Host is the selection list a Filter is attached to.
type Host interface {
	// Options returns the ordered option collection. The slice and the
	// options it points to stay owned by the host.
	Options() []*Option
	// Multiple reports whether the host allows several committed values.
	Multiple() bool
	// ScrollIntoView asks the host to reveal the option at index.
	ScrollIntoView(index int, align ScrollAlign)
}
