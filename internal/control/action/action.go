// Package action holds the actions the user can trigger through input.
package action

// An Action is something the user can trigger, e.g. zooming in.
type Action interface {
	// Do performs the action.
	Do()

	// Explain returns a short description of what Do does, e.g. for help.
	Explain() string
}
