package apierrors

const (
	MsgInvalidPayload  = "invalidPayload"
	MsgInvalidField    = "invalidField"
	MsgInvalidAvatar   = "invalidAvatar"
	MsgInternal        = "internalError"
	MsgRouteNotFound   = "routeNotFound"
	MsgForbidden       = "forbidden"
	MsgUnauthorized    = "unauthorized"
	MsgAuthFailed      = "authFailed"
	MsgAccountDisabled = "accountDisabled"
	MsgUploadFailed    = "uploadFailed"

	MsgConflict              = "conflict"
	MsgEmailTaken            = "emailTaken"
	MsgOrganizationSlugTaken = "organizationSlugTaken"
	MsgDepartmentNameTaken   = "departmentNameTaken"
	MsgProjectSlugTaken      = "projectSlugTaken"
	MsgInvalidReference      = "invalidReference"
	MsgDepartmentNotInOrg    = "departmentNotInOrganization"
	MsgMemberNotInOrg        = "memberNotInOrganization"
	MsgReplyOutsideTask      = "replyOutsideTask"
	MsgNotFound              = "notFound"
	MsgOrganizationNotFound  = "organizationNotFound"
	MsgDepartmentNotFound    = "departmentNotFound"
	MsgUserNotFound          = "userNotFound"
	MsgProjectNotFound       = "projectNotFound"
	MsgTaskNotFound          = "taskNotFound"
	MsgCommentNotFound       = "commentNotFound"
)
