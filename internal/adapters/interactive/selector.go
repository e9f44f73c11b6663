package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

const pageSize = 10

var (
	errNonInteractive = errors.New("interactive selection not available in non-interactive mode")
	errNoCandidates   = errors.New("no contracts provided for selection")
)

// SelectorAdapter picks one artifact when a contract name is ambiguous
type SelectorAdapter struct {
	nonInteractive bool
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{nonInteractive: cfg.NonInteractive}
}

// SelectContract prompts for one of the candidates. A single candidate is returned without prompting.
func (s *SelectorAdapter) SelectContract(ctx context.Context, candidates []*models.Contract, prompt string) (*models.Contract, error) {
	switch {
	case len(candidates) == 0:
		return nil, errNoCandidates
	case len(candidates) == 1:
		return candidates[0], nil
	case s.nonInteractive:
		return nil, errNonInteractive
	}

	labels := lo.Map(candidates, func(c *models.Contract, _ int) string { return candidateLabel(c) })
	keys := lo.Map(candidates, func(c *models.Contract, _ int) string { return c.FullName() })

	sel := promptui.Select{
		Label: prompt,
		Items: labels,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . | faint }}",
			Selected: "✓ {{ . | green }}",
			Help:     color.New(color.FgYellow).Sprint("Type to filter, arrows to move, Enter to deploy"),
		},
		Size:              pageSize,
		StartInSearchMode: true,
		Searcher:          candidateSearcher(keys),
	}

	index, _, err := sel.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return candidates[index], nil
}

// candidateLabel renders "Name (path) solc X" with a marker for artifacts that cannot be deployed
func candidateLabel(c *models.Contract) string {
	var b strings.Builder
	b.WriteString(color.New(color.Bold).Sprint(c.Name))
	b.WriteString(" ")
	b.WriteString(color.New(color.FgBlue).Sprintf("(%s)", strings.TrimPrefix(c.Path, "src/")))

	if c.Artifact != nil && c.Artifact.Metadata.Compiler.Version != "" {
		b.WriteString(color.New(color.Faint).Sprintf(" solc %s", c.Artifact.Metadata.Compiler.Version))
	}
	switch {
	case !c.HasBytecode():
		b.WriteString(color.New(color.FgYellow).Sprint(" [no bytecode]"))
	case c.NeedsLinking():
		b.WriteString(color.New(color.FgYellow).Sprint(" [needs linking]"))
	}
	return b.String()
}

// candidateSearcher filters on the uncoloured path:Name keys
func candidateSearcher(keys []string) func(input string, index int) bool {
	lowered := lo.Map(keys, func(k string, _ int) string { return strings.ToLower(k) })
	return func(input string, index int) bool {
		input = strings.ToLower(strings.TrimSpace(input))
		if input == "" {
			return true
		}
		key := lowered[index]
		return strings.Contains(key, input) || len(fuzzy.Find(input, []string{key})) > 0
	}
}

var _ usecase.ContractSelector = (*SelectorAdapter)(nil)
