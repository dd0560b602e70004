package questiongen

import "context"

// Generator produces Polish practice questions for a set of concepts.
type Generator interface {
	// Generate returns up to req.Quantity validated questions. Items that
	// fail validation are dropped, so fewer may come back. An error means
	// the call as a whole failed and nothing was produced.
	Generate(ctx context.Context, req Request) ([]Generated, error)
}
