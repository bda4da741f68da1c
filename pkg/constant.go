package pkg

const (
	// maximum number of locations a road network may hold unless GRAPH_CAPACITY says otherwise
	DEFAULT_GRAPH_CAPACITY = 100

	NONE_VALUE = "none"
)

// route names used in the report and in API responses
const (
	BEST_DRIVING_ROUTE        = "BestDrivingRoute"
	ALTERNATIVE_DRIVING_ROUTE = "AlternativeDrivingRoute"
	RESTRICTED_DRIVING_ROUTE  = "RestrictedDrivingRoute"
)

// request description keys
const (
	KEY_MODE           = "Mode"
	KEY_SOURCE         = "Source"
	KEY_DESTINATION    = "Destination"
	KEY_AVOID_NODES    = "AvoidNodes"
	KEY_AVOID_SEGMENTS = "AvoidSegments"
	KEY_INCLUDE_NODE   = "IncludeNode"
)
