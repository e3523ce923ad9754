package constants

const (
	MsgInvalidData      = "Invalid data"
	MsgUnauthorized     = "Unauthorized"
	MsgForbidden        = "Forbidden"
	MsgAccountDisabled  = "Account disabled"
	MsgNotFound         = "Not found"
	MsgAlreadyExists    = "Already exists"
	MsgInvalidReference = "Referenced entity does not exist"
	MsgTooManyRequests  = "Too many requests"
)
