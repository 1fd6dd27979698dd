package server

// Route paths served by the console session facade.
const (
	// RouteLogin is where a forced logout navigates the browser to. The login
	// page itself is served elsewhere.
	RouteLogin = "/login"

	RouteSession     = "/api/session"
	RouteSessionUser = "/api/session/user"
	RouteIdentity    = "/api/identity"
	RouteLogout      = "/api/logout"
)
