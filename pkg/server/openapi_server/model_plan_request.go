// SPDX-License-Identifier: MIT

package openapi_server

type PlanRequest struct {
	Start *Cell    `json:"start"`
	Goal  *Cell    `json:"goal"`
	K     *float64 `json:"k,omitempty"` // turning penalty, the configured one if omitted
}

// AssertPlanRequestRequired checks if the required fields are not zero-ed
func AssertPlanRequestRequired(obj PlanRequest) error {
	elements := map[string]interface{}{
		"start": obj.Start,
		"goal":  obj.Goal,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
