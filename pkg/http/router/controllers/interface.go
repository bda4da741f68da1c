package controllers

import (
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/request"
)

type RoutingService interface {
	Route(req *request.Request) (*engine.Result, bool, error)
}
