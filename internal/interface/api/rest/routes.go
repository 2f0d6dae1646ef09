package rest

const (
	// auth
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// files
	RouteFile = "/file"
	RouteList = "/list"

	// accounts (exempt from session resolution)
	RouteUsers = "/user"
	RouteUser  = RouteUsers + "/:user_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
