package filter

// Kind identifies the shape of data flowing through one endpoint of a Filter.
type Kind string

const (
	// KindNone means no data flows at this endpoint.
	KindNone Kind = "none"
	// KindStream is an open byte channel read or written incrementally.
	KindStream Kind = "stream"
	// KindIterator is a lazy sequence of arbitrary values.
	KindIterator Kind = "iterator"
	// KindBuffer is a single complete block of bytes, handled atomically.
	KindBuffer Kind = "buffer"
)

// IoSpec describes one endpoint (input or output) of a Filter.
type IoSpec struct {
	// Kind is the shape of data at this endpoint.
	Kind Kind
	// Mandatory records whether a value must flow here. Read it through
	// Required: a none-kind endpoint is never required, whatever this
	// flag says.
	Mandatory bool
}

// Spec returns a mandatory IoSpec of the given kind.
func Spec(kind Kind) IoSpec { return IoSpec{Kind: kind, Mandatory: true} }

// Optional returns a non-mandatory IoSpec of the given kind.
func Optional(kind Kind) IoSpec { return IoSpec{Kind: kind} }

// Required reports whether a value must actually flow at this endpoint.
func (s IoSpec) Required() bool { return s.Mandatory && s.Kind != KindNone }

// normalize fills in the zero value so an unset spec reads as none-kind.
func (s IoSpec) normalize() IoSpec {
	if s.Kind == "" {
		s.Kind = KindNone
	}
	return s
}
