package processors

import (
	"github.com/ja-he/flycreate/internal/input"
)

// ChainInputProcessor offers input to a list of processors in order, stopping
// at the first one that applies it. Global bindings go first so that a bound
// combination never reaches the document's own handling.
// Implements input.SimpleInputProcessor.
type ChainInputProcessor struct {
	processors []input.SimpleInputProcessor
}

// NewChainInputProcessor returns a pointer to a new chain of the given
// processors, in priority order.
func NewChainInputProcessor(processors ...input.SimpleInputProcessor) *ChainInputProcessor {
	return &ChainInputProcessor{processors: processors}
}

// CapturesInput returns whether any processor in the chain captures input.
func (p *ChainInputProcessor) CapturesInput() bool {
	for _, processor := range p.processors {
		if processor.CapturesInput() {
			return true
		}
	}
	return false
}

// ProcessInput offers the key to each processor in turn.
// Returns whether any of them applied it.
func (p *ChainInputProcessor) ProcessInput(key input.Key) bool {
	for _, processor := range p.processors {
		if processor.ProcessInput(key) {
			return true
		}
	}
	return false
}

// GetHelp returns the merged help of all processors; earlier processors win on
// conflicts.
func (p *ChainInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for i := len(p.processors) - 1; i >= 0; i-- {
		for k, v := range p.processors[i].GetHelp() {
			result[k] = v
		}
	}
	return result
}
