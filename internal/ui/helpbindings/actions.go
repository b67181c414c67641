package helpbindings

import "github.com/llehouerou/halftone/internal/ui/action"

// Close asks the app to dismiss the help popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// ActionMsg tags a help popup action with its source for routing.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
