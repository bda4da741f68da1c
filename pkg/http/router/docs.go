package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/routes": {
            "get": {
                "description": "Best and alternative driving route, or the restricted route when avoid_nodes, avoid_segments or include_node is set.",
                "produces": ["application/json"],
                "tags": ["routing"],
                "summary": "driving routes between two locations",
                "parameters": [
                    {"type": "integer", "description": "source location id", "name": "source", "in": "query", "required": true},
                    {"type": "integer", "description": "destination location id", "name": "destination", "in": "query", "required": true},
                    {"type": "string", "description": "comma separated location ids, e.g. 3,5", "name": "avoid_nodes", "in": "query"},
                    {"type": "string", "description": "segments, e.g. (1,2),(3,4)", "name": "avoid_segments", "in": "query"},
                    {"type": "integer", "description": "location the route must pass through", "name": "include_node", "in": "query"},
                    {"type": "string", "description": "travel mode, e.g. driving", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/routesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "route": {
            "type": "object",
            "properties": {
                "path": {"type": "array", "items": {"type": "integer"}},
                "cost": {"type": "integer"}
            }
        },
        "routesResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "source": {"type": "integer"},
                "destination": {"type": "integer"},
                "restricted": {"type": "boolean"},
                "cached": {"type": "boolean"},
                "routes": {"type": "object", "additionalProperties": {"$ref": "#/definitions/route"}},
                "report": {"type": "string"}
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo describes the routing API served under /doc.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "drivingroute API",
	Description:      "Shortest and restricted driving routes over a road network of numbered locations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
