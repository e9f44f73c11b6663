package resolvers

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// maxSuggestions caps the "did you mean" list on unknown names
const maxSuggestions = 3

// ContractResolver handles contract resolution and selection
type ContractResolver struct {
	config   *config.RuntimeConfig
	repo     usecase.ContractRepository
	selector usecase.ContractSelector
}

// NewContractResolver creates a new contract resolver
func NewContractResolver(
	cfg *config.RuntimeConfig,
	repo usecase.ContractRepository,
	selector usecase.ContractSelector,
) *ContractResolver {
	return &ContractResolver{
		config:   cfg,
		repo:     repo,
		selector: selector,
	}
}

// ResolveContract resolves "Name" or "path:Name" to a single deployable contract.
// Every failure is reported as a *domain.ResolutionError.
func (r *ContractResolver) ResolveContract(ctx context.Context, name string) (*models.Contract, error) {
	contract, err := r.repo.GetContract(ctx, name)
	if err != nil {
		var ambiguous *domain.AmbiguousContractError
		switch {
		case errors.As(err, &ambiguous):
			contract, err = r.selectAmbiguous(ctx, ambiguous)
			if err != nil {
				return nil, &domain.ResolutionError{Name: name, Reason: err}
			}
		case errors.Is(err, domain.ErrContractNotFound):
			return nil, &domain.ResolutionError{
				Name:        name,
				Reason:      domain.ErrContractNotFound,
				Suggestions: r.suggest(ctx, name),
			}
		default:
			return nil, &domain.ResolutionError{Name: name, Reason: err}
		}
	}

	if !contract.HasBytecode() {
		return nil, &domain.ResolutionError{Name: name, Reason: domain.ErrNoBytecode}
	}
	if contract.NeedsLinking() {
		return nil, &domain.ResolutionError{Name: name, Reason: domain.ErrUnlinkedLibraries}
	}

	return contract, nil
}

// selectAmbiguous asks the user to pick one of several same-named contracts
func (r *ContractResolver) selectAmbiguous(ctx context.Context, ambiguous *domain.AmbiguousContractError) (*models.Contract, error) {
	if r.selector == nil || r.config.NonInteractive {
		return nil, ambiguous
	}

	selected, err := r.selector.SelectContract(ctx, ambiguous.Matches,
		fmt.Sprintf("Multiple contracts found for '%s'. Select one:", ambiguous.Name))
	if err != nil {
		return nil, fmt.Errorf("contract selection failed: %w", err)
	}
	return selected, nil
}

// suggest returns the closest known contract names
func (r *ContractResolver) suggest(ctx context.Context, name string) []string {
	all, err := r.repo.GetAllContracts(ctx)
	if err != nil {
		return nil
	}

	names := lo.Uniq(lo.Map(all, func(c *models.Contract, _ int) string { return c.Name }))
	matches := fuzzy.Find(name, names)

	var suggestions []string
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// Ensure the resolver implements the interface
var _ usecase.ContractResolver = (*ContractResolver)(nil)
