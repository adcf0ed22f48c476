// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation

import "encoding/json"

// # Actions

// ActionKind names the variant held by an [Action].
type ActionKind string

const (
	ActionNone       ActionKind = "none"
	ActionCallback   ActionKind = "callback"
	ActionNavigateTo ActionKind = "navigate"
)

// Action is what activating a call-to-action does. It is one of
// [Callback], [NavigateTo] or [None], resolved once when the view is built.
type Action interface {
	Kind() ActionKind
	isAction()
}

// Callback runs an in-process function.
type Callback struct {
	Fn func()
}

// NavigateTo follows a link.
type NavigateTo struct {
	URL string
}

// None renders no control at all.
type None struct{}

func (Callback) Kind() ActionKind   { return ActionCallback }
func (NavigateTo) Kind() ActionKind { return ActionNavigateTo }
func (None) Kind() ActionKind       { return ActionNone }

func (Callback) isAction()   {}
func (NavigateTo) isAction() {}
func (None) isAction()       {}

// MarshalJSON renders the callback as its kind only; functions do not travel.
func (action Callback) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"kind": string(ActionCallback)})
}

// MarshalJSON implements [json.Marshaler].
func (action NavigateTo) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"kind": string(ActionNavigateTo), "href": action.URL})
}

// MarshalJSON implements [json.Marshaler].
func (action None) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"kind": string(ActionNone)})
}

// ActionFor resolves a CMS button into an action. A button without a link
// renders nothing.
func ActionFor(button Button) Action {
	if button.Href == "" {
		return None{}
	}
	return NavigateTo{URL: button.Href}
}

// ActionFromCallback wraps fn, or returns [None] when fn is nil.
func ActionFromCallback(fn func()) Action {
	if fn == nil {
		return None{}
	}
	return Callback{Fn: fn}
}

// Dispatch performs the action. navigate receives the URL of a [NavigateTo].
// It reports whether anything happened.
func Dispatch(action Action, navigate func(url string)) bool {
	switch typed := action.(type) {
	case Callback:
		typed.Fn()
		return true
	case NavigateTo:
		if navigate != nil {
			navigate(typed.URL)
		}
		return true
	default:
		return false
	}
}
