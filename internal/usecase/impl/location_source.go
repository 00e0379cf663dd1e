package impl

import (
	"context"

	"convoy/internal/domain/service"
	"convoy/internal/feed"
)

// channelSource adapts pushed HTTP samples into the LocationSource stream a
// session consumes. Latest-wins: a session that falls behind only ever sees
// the freshest sample, matching the one-in-flight-publish-per-sample contract.
type channelSource struct {
	samples *feed.Feed[service.Sample]
}

func newChannelSource() *channelSource {
	return &channelSource{samples: feed.New[service.Sample]()}
}

// Updates returns the sample stream. The stream ends when Close is called.
func (s *channelSource) Updates(_ context.Context) (<-chan service.Sample, error) {
	return s.samples.Updates(), nil
}

// Push feeds one sample into the stream.
func (s *channelSource) Push(sample service.Sample) {
	s.samples.Publish(sample)
}

// Close ends the stream.
func (s *channelSource) Close() {
	s.samples.Close()
}
