package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/pkg/apierrors"
)

type errorMapping struct {
	target error
	status int
	msgKey string
}

// Order matters: specific errors before the category they wrap.
var errorMappings = []errorMapping{
	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{domain.ErrOrganizationSlugTaken, http.StatusConflict, apierrors.MsgOrganizationSlugTaken},
	{domain.ErrDepartmentNameTaken, http.StatusConflict, apierrors.MsgDepartmentNameTaken},
	{domain.ErrProjectSlugTaken, http.StatusConflict, apierrors.MsgProjectSlugTaken},
	{domain.ErrConflict, http.StatusConflict, apierrors.MsgConflict},

	{domain.ErrOrganizationNotFound, http.StatusNotFound, apierrors.MsgOrganizationNotFound},
	{domain.ErrDepartmentNotFound, http.StatusNotFound, apierrors.MsgDepartmentNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrProjectNotFound, http.StatusNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrCommentNotFound, http.StatusNotFound, apierrors.MsgCommentNotFound},
	{domain.ErrNotFound, http.StatusNotFound, apierrors.MsgNotFound},

	{domain.ErrDepartmentNotInOrganization, http.StatusUnprocessableEntity, apierrors.MsgDepartmentNotInOrg},
	{domain.ErrMemberNotInOrganization, http.StatusUnprocessableEntity, apierrors.MsgMemberNotInOrg},
	{domain.ErrReplyOutsideTask, http.StatusUnprocessableEntity, apierrors.MsgReplyOutsideTask},
	{domain.ErrInvalidReference, http.StatusUnprocessableEntity, apierrors.MsgInvalidReference},

	{domain.ErrAccountDisabled, http.StatusForbidden, apierrors.MsgAccountDisabled},
	{domain.ErrAuthFailed, http.StatusUnauthorized, apierrors.MsgAuthFailed},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
	{domain.ErrUploadFailed, http.StatusBadGateway, apierrors.MsgUploadFailed},
}

// respondError writes the translated error for err. Unclassified errors are
// logged and answered with 500.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, apierrors.CreateErrorWithData(
			http.StatusBadRequest, apierrors.MsgInvalidField, lang,
			map[string]any{"Field": verr.Field, "Reason": verr.Reason},
		))
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status == http.StatusBadGateway {
				zap.L().Warn(logMsg, append(fields, zap.Error(err))...)
			}
			c.JSON(m.status, apierrors.CreateError(m.status, m.msgKey, lang))
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang))
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, middleware.GetLang(c)),
	)
}

func respondForbidden(c *gin.Context) {
	c.JSON(
		http.StatusForbidden,
		apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, middleware.GetLang(c)),
	)
}
