package v1

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrUnauthorized        = newError(401, "unauthorized")
	ErrNotFound            = newError(404, "not found")
	ErrConflict            = newError(409, "conflict")
	ErrInternalServerError = newError(500, "internal server error")

	// more biz errors
	ErrUsernameAlreadyUse = newError(1002, "The username is already in use.")

	// dataset lifecycle errors
	ErrDatasetNotFound   = newError(2001, "dataset not found")
	ErrInvalidTransition = newError(2002, "invalid mode/status transition")
	ErrResetNotAllowed   = newError(2003, "dataset is not in a resettable state")
	ErrBookingNotFound   = newError(2004, "booking not found")
	ErrInvalidMode       = newError(2005, "invalid mode or status")

	// facility mirror errors
	ErrProjectNotFound    = newError(3001, "project not found")
	ErrSystemNotFound     = newError(3002, "system not found")
	ErrDailyTaskNotFound  = newError(3003, "daily task not found")
	ErrCollectionNotFound = newError(3004, "collection not found")

	// sync errors
	ErrSyncInProgress = newError(4001, "sync already in progress")
	ErrUnknownTask    = newError(4002, "unknown sync task")
)
