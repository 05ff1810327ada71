package core

// DefaultKeyBindings is the stock binding table. Section-specific bindings
// (segment navigation) are global in scope but routed by the model to
// whichever section currently holds focus.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"v", "ctrl+k"}, Action: ActionJump, Description: "sections", Scopes: []string{"*"}},
		{Keys: []string{"left", "h"}, Action: ActionSegmentPrev, Description: "prev pill", Scopes: []string{"*"}},
		{Keys: []string{"right", "l"}, Action: ActionSegmentNext, Description: "next pill", Scopes: []string{"*"}},
		{Keys: []string{"c"}, Action: ActionCopyInstall, Description: "copy install", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: ActionScrollDown, Description: "scroll", Scopes: []string{"*"}},
		{Keys: []string{"k", "up"}, Action: ActionScrollUp, Description: "scroll", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+d", "pgdown"}, Action: ActionPageDown, Description: "page down", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+u", "pgup"}, Action: ActionPageUp, Description: "page up", Scopes: []string{"*"}},
		{Keys: []string{"g", "home"}, Action: ActionTop, Description: "top", Scopes: []string{"*"}},
		{Keys: []string{"G", "end"}, Action: ActionBottom, Description: "bottom", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{"screen:palette"}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{"screen:palette"}},
	}
}
