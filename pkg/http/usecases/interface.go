package usecases

import (
	"github.com/lintang-b-s/drivingroute/pkg/engine"
	"github.com/lintang-b-s/drivingroute/pkg/request"
)

type RoutingEngine interface {
	Plan(req *request.Request) (*engine.Result, error)
}
