package constants

// Centralized constants for headers, routes, response keys and log fields.
const (
	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
	CacheControlContent = "public, max-age=300"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteBootstrap   = "/bootstrap"
	RouteAction      = "/action"
	RouteContent     = "/content"
	RouteSaveHistory = "/saves/:sid/history"
	RoutePing        = "/ping"
	RouteVersion     = "/version"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeySaveID = "sid"
	JSONKeyState  = "state"
	JSONKeyOK     = "ok"
	JSONKeyRuns   = "runs"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrMissingSaveID      = "missing sid"
	ErrFailedLoadSave     = "Failed to load save"
	ErrFailedStoreSave    = "Failed to store save"
	ErrFailedFetchHistory = "Failed to fetch run history"
	ErrFailedBuildContent = "Failed to build content"
)

// Logging field names
const (
	LogFieldSaveID  = "save_id"
	LogFieldAction  = "action"
	LogFieldRunID   = "run_id"
	LogFieldResult  = "result"
	LogFieldFloor   = "floor"
	LogFieldVersion = "version"
	LogFieldError   = "error"
	LogFieldCount   = "count"
	LogFieldCutoff  = "cutoff"
	LogFieldAddr    = "addr"
	LogFieldPath    = "path"
)
