package auth

import "strings"

// authIndicators are the substrings that mark an error message as an
// authentication or authorization failure. This sniffing only backs up the
// structured classification in the k8s package, for errors that come from
// opaque sources such as the login script or exec credential plugins.
var authIndicators = []string{
	"unauthorized",
	"401",
	"403",
	"forbidden",
	"token has expired",
	"token is expired",
	"unable to connect to the server",
	"credentials",
	"authentication",
	"exec plugin",
	"no auth provider",
}

// LooksLikeAuthErrorText reports whether the error text reads like an
// auth failure.
func LooksLikeAuthErrorText(text string) bool {
	text = strings.ToLower(text)
	for _, indicator := range authIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}
