package hxcmd

// Recognized command attribute names.
//
// Every attribute a command tag may carry is enumerated here. The validator
// rejects tags whose attributes fall outside this vocabulary, so adding a new
// directive starts with adding its name to this list.
const (
	AttrTarget             = "target"
	AttrSwap               = "swap"
	AttrSelect             = "select"
	AttrRedirect           = "redirect"
	AttrRefresh            = "refresh"
	AttrLocation           = "location"
	AttrPushURL            = "push-url"
	AttrReplaceURL         = "replace-url"
	AttrTrigger            = "trigger"
	AttrTriggerAfterSwap   = "trigger-after-swap"
	AttrTriggerAfterSettle = "trigger-after-settle"
)

// attrNames lists the recognized vocabulary in a stable order, used for
// iteration and error rendering.
var attrNames = []string{
	AttrTarget,
	AttrSwap,
	AttrSelect,
	AttrRedirect,
	AttrRefresh,
	AttrLocation,
	AttrPushURL,
	AttrReplaceURL,
	AttrTrigger,
	AttrTriggerAfterSwap,
	AttrTriggerAfterSettle,
}

var recognizedAttrs = func() map[string]bool {
	m := make(map[string]bool, len(attrNames))
	for _, name := range attrNames {
		m[name] = true
	}
	return m
}()

// IsCommandAttr reports whether name belongs to the recognized attribute
// vocabulary.
func IsCommandAttr(name string) bool {
	return recognizedAttrs[name]
}
