package progress

// NopIndicator is a no-op indicator for non-interactive runs
type NopIndicator struct{}

// NewNopIndicator creates a new no-op indicator
func NewNopIndicator() *NopIndicator {
	return &NopIndicator{}
}

func (n *NopIndicator) Start(message string) {}

func (n *NopIndicator) Stop() {}

// Ensure indicators implement Indicator
var (
	_ Indicator = (*NopIndicator)(nil)
	_ Indicator = (*SpinnerIndicator)(nil)
)
