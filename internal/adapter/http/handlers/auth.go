package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/validation"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
	"github.com/Abdullah-yafai/project-managment/pkg/apierrors"
)

const MaxAvatarSize = 5 << 20

var errInvalidAvatar = errors.New("invalid avatar")

type AuthHandler struct {
	registration ports.RegistrationService
	auth         ports.AuthService
}

func NewAuthHandler(registration ports.RegistrationService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{registration: registration, auth: auth}
}

// Register accepts a JSON body or a multipart form with an optional
// "avatar" image part.
func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	avatar, closeAvatar, err := readAvatar(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAvatar, lang),
		)
		return
	}
	defer closeAvatar()

	user, err := h.registration.Register(c.Request.Context(), validation.BuildRegisterInput(req, avatar))
	if err != nil {
		respondError(c, err, "failed to register user", zap.String("mode", req.Mode))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, mapper.ToLoginResponse(user, session))
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized, "missing identity")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func readAvatar(c *gin.Context) (*domain.AvatarFile, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, noop, nil
	}

	header, err := c.FormFile("avatar")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errInvalidAvatar
	}
	if header.Size <= 0 || header.Size > MaxAvatarSize {
		return nil, noop, errInvalidAvatar
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, noop, errInvalidAvatar
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errInvalidAvatar
	}

	return &domain.AvatarFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}, closeFile(file), nil
}

func closeFile(file multipart.File) func() {
	return func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close avatar part", zap.Error(err))
		}
	}
}
