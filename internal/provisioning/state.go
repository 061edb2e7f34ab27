package provisioning

// State holds the shared results of composition phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Network and LoadBalancer are the logical names chosen by the
	// import-or-create decision.
	Network      string
	LoadBalancer string

	// Endpoints lists the auxiliary endpoint nodes, if any.
	Endpoints []string

	// Imported lists reference-only nodes in registration order.
	Imported []string

	// Warnings collects validation warnings.
	Warnings []string
}

// NewState creates an empty composition state.
func NewState() *State {
	return &State{}
}
