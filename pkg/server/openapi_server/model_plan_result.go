// SPDX-License-Identifier: MIT

package openapi_server

type PlanResult struct {
	Start          Cell      `json:"start"`
	Goal           Cell      `json:"goal"`
	Reachable      bool      `json:"reachable"`
	Navigator      string    `json:"navigator"`
	TurnPenalty    float64   `json:"k"`
	Depth          int       `json:"depth"`
	NodesGenerated int       `json:"nodesGenerated"`
	Cost           float64   `json:"cost"`
	Actions        []int     `json:"actions"`
	FValues        []float64 `json:"fValues"`
	Path           []Cell    `json:"path"`
}

// GridResponse holds the occupancy grid, rows[y][x] with row 0 at the bottom
type GridResponse struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Rows   [][]int `json:"rows"`
}
