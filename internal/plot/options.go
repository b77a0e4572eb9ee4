package plot

const (
	DefaultWidth  = 80
	DefaultHeight = 20
	DefaultBins   = 100
)

// Range pins the y axis; points outside it are dropped.
type Range struct {
	Bottom, Top float64
}

type Options struct {
	Width  int
	Height int
	Bins   int
	YRange *Range
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Bins:   DefaultBins,
	}
}

func (o Options) width() int {
	if o.Width < 1 {
		return DefaultWidth
	}
	return o.Width
}

func (o Options) height() int {
	if o.Height < 1 {
		return DefaultHeight
	}
	return o.Height
}

func (o Options) bins() int {
	if o.Bins < 1 {
		return DefaultBins
	}
	return o.Bins
}
