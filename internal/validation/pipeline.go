package validation

import (
	"github.com/carson-networks/account-server/internal/model"
)

// Pipeline runs strategies in registration order. Order is significant: it
// determines the order of reported messages.
type Pipeline struct {
	strategies []Strategy
}

func NewPipeline(strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies}
}

// NewDefaultPipeline returns the pipeline used for account creation and mutation.
func NewDefaultPipeline() *Pipeline {
	return NewPipeline(MinimumBalance{}, ActiveAccount{}, OwnerExists{})
}

// Validate reports whether every strategy holds.
func (p *Pipeline) Validate(account model.AccountDraft) bool {
	for _, strategy := range p.strategies {
		if !strategy.Validate(account) {
			return false
		}
	}
	return true
}

// ValidateWithErrors runs every strategy and returns the messages of those
// that failed. An empty result means the account is valid.
func (p *Pipeline) ValidateWithErrors(account model.AccountDraft) []string {
	var errs []string
	for _, strategy := range p.strategies {
		if !strategy.Validate(account) {
			errs = append(errs, strategy.ErrorMessage())
		}
	}
	return errs
}
