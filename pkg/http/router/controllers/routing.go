package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/drivingroute/pkg"
	helper "github.com/lintang-b-s/drivingroute/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/drivingroute/pkg/request"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/routes", api.computeRoutes)
}

// queryKeys maps query parameters to request-file keys.
var queryKeys = map[string]string{
	"mode":           pkg.KEY_MODE,
	"source":         pkg.KEY_SOURCE,
	"destination":    pkg.KEY_DESTINATION,
	"avoid_nodes":    pkg.KEY_AVOID_NODES,
	"avoid_segments": pkg.KEY_AVOID_SEGMENTS,
	"include_node":   pkg.KEY_INCLUDE_NODE,
}

// computeRoutes answers GET /api/routes. Without avoid_nodes, avoid_segments and include_node
// it returns the best and the alternative route, otherwise the restricted route.
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	fields := make(map[string]string, len(queryKeys))
	for param, key := range queryKeys {
		if query.Has(param) {
			fields[key] = query.Get(param)
		}
	}

	req, err := request.Build(fields)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	requestID := uuid.New().String()
	res, cached, err := api.routingService.Route(req)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	api.log.Debug("routes computed", zap.String("requestID", requestID), zap.Bool("cached", cached))

	headers := make(http.Header)
	headers.Set("X-Request-Id", requestID)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(requestID, res, cached)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
