package brightness

// DisplaySetter applies a brightness in [0, 1] to the display. Write only.
type DisplaySetter interface {
	SetBrightness(value float64) error
}

// ProgressSink receives a progress level in [0, MaxLevel].
type ProgressSink interface {
	SetProgress(level int) error
}

// TextSink receives the human readable label.
type TextSink interface {
	SetText(label string) error
}

type DisplayFunc func(value float64) error

func (f DisplayFunc) SetBrightness(value float64) error { return f(value) }

type ProgressFunc func(level int) error

func (f ProgressFunc) SetProgress(level int) error { return f(level) }

type TextFunc func(label string) error

func (f TextFunc) SetText(label string) error { return f(label) }

type discard struct{}

func (discard) SetBrightness(float64) error { return nil }
func (discard) SetProgress(int) error       { return nil }
func (discard) SetText(string) error        { return nil }

// Discard implements every sink and drops what it is given.
var Discard discard
