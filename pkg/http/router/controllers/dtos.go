package controllers

import (
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/report"
)

type routeResponse struct {
	Path []uint32 `json:"path"`
	Cost int      `json:"cost"`
}

type routesResponse struct {
	RequestID   string                    `json:"request_id"`
	Source      uint32                    `json:"source"`
	Destination uint32                    `json:"destination"`
	Restricted  bool                      `json:"restricted"`
	Cached      bool                      `json:"cached"`
	Routes      map[string]*routeResponse `json:"routes"`
	Report      string                    `json:"report"`
}

func NewRoutesResponse(requestID string, res *engine.Result, cached bool) routesResponse {
	routes := make(map[string]*routeResponse, len(res.GetRoutes()))
	for _, nr := range res.GetRoutes() {
		if nr.Route == nil {
			routes[nr.Name] = nil
			continue
		}
		path := make([]uint32, 0, nr.Route.Len())
		for _, v := range nr.Route.GetPath() {
			path = append(path, uint32(v))
		}
		routes[nr.Name] = &routeResponse{Path: path, Cost: nr.Route.GetTravelTime()}
	}

	return routesResponse{
		RequestID:   requestID,
		Source:      uint32(res.GetSource()),
		Destination: uint32(res.GetDestination()),
		Restricted:  res.IsRestricted(),
		Cached:      cached,
		Routes:      routes,
		Report:      report.Format(res),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type envelope map[string]any
