package openapi_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverMaze = `0 0 3 0
0 0 0 0
0 1 0 0
0 1 0 0
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m, err := grid.ParseMazeString(serverMaze, 4, 3)
	require.NoError(t, err)
	planner, err := planning.NewPlanner(m.Grid, planning.PlanConfig{}, nil)
	require.NoError(t, err)

	router := NewRouter(NewDefaultApiController(NewDefaultApiService(planner)))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, server *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, server *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestComputePlanEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/plans", `{"start":{"x":0,"y":0},"goal":{"x":3,"y":0}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var result PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Reachable)
	assert.Equal(t, "astar", result.Navigator)
	assert.Equal(t, Cell{X: 0, Y: 0}, result.Path[0])
	assert.Equal(t, Cell{X: 3, Y: 0}, result.Path[len(result.Path)-1])
	assert.Len(t, result.Actions, result.Depth)
	assert.Len(t, result.FValues, result.Depth+1)
	for _, c := range result.Path {
		assert.NotEqual(t, Cell{X: 1, Y: 0}, c)
		assert.NotEqual(t, Cell{X: 1, Y: 1}, c)
	}

	resp = get(t, server, "/searchSpace")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var space Cells
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&space))
	assert.NotEmpty(t, space.Cells)
	assert.Equal(t, Cell{X: 0, Y: 0}, space.Cells[0])
}

func TestComputePlanEndpointWithPenalty(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/plans", `{"start":{"x":0,"y":0},"goal":{"x":0,"y":2},"k":7.5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 7.5, result.TurnPenalty)
	assert.Equal(t, []int{2, 2}, result.Actions)
	assert.Equal(t, 2.0, result.Cost)

	// the override only holds for one request
	resp = post(t, server, "/plans", `{"start":{"x":0,"y":0},"goal":{"x":0,"y":2}}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 0.0, result.TurnPenalty)
}

func TestComputePlanEndpointUnreachable(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/plans", `{"start":{"x":0,"y":0},"goal":{"x":1,"y":1}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Reachable)
	assert.Empty(t, result.Path)
}

func TestComputePlanEndpointErrors(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"start":`},
		{"unknown field", `{"start":{"x":0,"y":0},"goal":{"x":1,"y":2},"speed":3}`},
		{"missing goal", `{"start":{"x":0,"y":0}}`},
		{"out of bounds", `{"start":{"x":0,"y":0},"goal":{"x":9,"y":0}}`},
		{"negative penalty", `{"start":{"x":0,"y":0},"goal":{"x":1,"y":2},"k":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, server, "/plans", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGridEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/grid")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var g GridResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&g))
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, [][]int{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}}, g.Rows)
}

func TestNavigatorEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/navigator", `{"navigator":"exact"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var navigator NavigatorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&navigator))
	assert.Equal(t, "exact", navigator.Navigator)

	resp = post(t, server, "/plans", `{"start":{"x":0,"y":0},"goal":{"x":3,"y":0}}`)
	var result PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "exact", result.Navigator)
	assert.True(t, result.Reachable)

	resp = post(t, server, "/navigator", `{"navigator":"bidirectional-dijkstra"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, server, "/navigator", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanGeoJSONEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/plans/geojson?sx=0&sy=0&gx=3&gy=0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "LineString", fc.Features[2].Geometry.Type)

	resp = get(t, server, "/plans/geojson?sx=0&sy=0&gx=3")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, server, "/plans/geojson?sx=a&sy=0&gx=3&gy=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)
	resp := get(t, server, "/nodes")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
