package rest

const (
	// users
	RouteUser = "/user/"

	// auth
	RouteLogin      = "/login"
	RouteLoginToken = RouteLogin + "/token"
	RouteTestAuth   = RouteLogin + "/test_auth_endpoint"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
