package ports

// Recorder receives numeric samples emitted by nodes.
// Implementations must not block the caller on I/O.
type Recorder interface {
	Record(metric string, value float64)
}

// RecorderFactory returns the Recorder a node with the given identifier and
// kind should report to.
type RecorderFactory func(id, kind string) Recorder
