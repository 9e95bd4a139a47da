// SPDX-License-Identifier: MIT

package openapi_server

type NavigatorRequest struct {
	Navigator string `json:"navigator"`
}

// NavigatorResponse describes the active search strategy
type NavigatorResponse struct {
	Navigator   string  `json:"navigator"`
	TurnPenalty float64 `json:"k"`
}

func AssertNavigatorRequestRequired(obj NavigatorRequest) error {
	if IsZeroValue(obj.Navigator) {
		return &RequiredError{Field: "navigator"}
	}
	return nil
}
