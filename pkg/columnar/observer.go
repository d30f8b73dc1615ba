package columnar

import "go.uber.org/zap"

// Mode says whether an append copied its source or consumed it
type Mode int

const (
	// ModeCopy leaves the source untouched
	ModeCopy Mode = iota
	// ModeConsume transfers values out of the source and empties it
	ModeConsume
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeConsume:
		return "consume"
	default:
		return "unknown"
	}
}

// Observer receives storage events from a table. Implementations must be
// cheap; they run inline on the appending goroutine.
type Observer interface {
	// OnGrow is called after the table's capacity changed from from to to
	OnGrow(table string, from, to int)
	// OnAppend is called after rows were appended
	OnAppend(table string, mode Mode, rows int)
}

type nopObserver struct{}

func (nopObserver) OnGrow(string, int, int)   {}
func (nopObserver) OnAppend(string, Mode, int) {}

// Option configures a Table
type Option func(*options)

type options struct {
	name     string
	logger   *zap.Logger
	observer Observer
	capacity int
}

func defaultOptions() options {
	return options{
		name:     "table",
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
}

// WithName sets the name used in logs and observer events
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Growth and merges are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an observer for storage events. A nil interface
// is ignored; a typed nil pointer is installed as is, so its methods must
// handle a nil receiver.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithInitialCapacity reserves room for n rows at construction
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
