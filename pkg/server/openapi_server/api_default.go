package openapi_server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputePlan",
			strings.ToUpper("Post"),
			"/plans",
			c.ComputePlan,
		},
		{
			"GetPlanGeoJSON",
			strings.ToUpper("Get"),
			"/plans/geojson",
			c.GetPlanGeoJSON,
		},
		{
			"GetGrid",
			strings.ToUpper("Get"),
			"/grid",
			c.GetGrid,
		},
		{
			"GetSearchSpace",
			strings.ToUpper("Get"),
			"/searchSpace",
			c.GetSearchSpace,
		},
		{
			"SetNavigator",
			strings.ToUpper("Post"),
			"/navigator",
			c.SetNavigator,
		},
	}
}

func allowOrigin(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// ComputePlan - Compute a new plan
func (c *DefaultApiController) ComputePlan(w http.ResponseWriter, r *http.Request) {
	planRequestParam := PlanRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&planRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertPlanRequestRequired(planRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputePlan(r.Context(), planRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	allowOrigin(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetPlanGeoJSON - Compute a plan and return it as GeoJSON, start and goal are given as query parameters
func (c *DefaultApiController) GetPlanGeoJSON(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	values := make(map[string]int, 4)
	for _, name := range []string{"sx", "sy", "gx", "gy"} {
		value, err := parseIntParameter(name, query.Get(name), true)
		if err != nil {
			c.errorHandler(w, r, err, nil)
			return
		}
		values[name] = value
	}
	start := Cell{X: values["sx"], Y: values["sy"]}
	goal := Cell{X: values["gx"], Y: values["gy"]}

	result, err := c.service.GetPlanGeoJSON(r.Context(), start, goal)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowOrigin(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetGrid(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetGrid(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowOrigin(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetSearchSpace(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetSearchSpace(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowOrigin(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) SetNavigator(w http.ResponseWriter, r *http.Request) {
	navigatorRequestParam := NavigatorRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&navigatorRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertNavigatorRequestRequired(navigatorRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.SetNavigator(r.Context(), navigatorRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowOrigin(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}
