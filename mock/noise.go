package mock

import "github.com/fwojciec/newsdesk"

var _ newsdesk.NoiseClassifier = (*NoiseClassifier)(nil)

// NoiseClassifier is a mock implementation of newsdesk.NoiseClassifier.
type NoiseClassifier struct {
	IsNoiseFn func(line string) bool
}

func (c *NoiseClassifier) IsNoise(line string) bool {
	return c.IsNoiseFn(line)
}
