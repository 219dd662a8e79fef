package segkit

import (
	"github.com/hupe1980/segkit/resource"
)

// DefaultBlockCapacity is a general-purpose block capacity for small element
// types. Any positive value is accepted by the constructors.
const DefaultBlockCapacity = 32

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
	directoryHint    int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures StableList and KeyedList construction.
type Option func(*options)

// WithLogger configures structured logging of block allocation and release.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for container events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &segkit.BasicMetricsCollector{}
//	list, _ := segkit.NewStableList[int](64, segkit.WithMetricsCollector(metrics))
//	list.PushBack(1)
//	fmt.Println(metrics.BlocksAllocated.Load()) // 1
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController accounts every block against rc.
//
// Each block reserves blockCapacity * sizeof(T) bytes when it is allocated
// and returns them on Close. When rc has a hard limit and a reservation is
// refused, the growing operation panics with an *AllocationError: running
// out of budget is treated like running out of memory.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithDirectoryHint pre-sizes the block directory for n blocks.
// Blocks themselves are still allocated lazily.
func WithDirectoryHint(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.directoryHint = n
	}
}
