package ports

import (
	"context"
	"time"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

type AvatarStore interface {
	Upload(ctx context.Context, file domain.AvatarFile) (domain.UploadedBlob, error)
	Delete(ctx context.Context, blobID string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(user domain.User, now time.Time) (domain.Session, error)
	Parse(token string) (domain.TokenClaims, error)
}

type ContentGenerator interface {
	Generate(ctx context.Context, topic string) (domain.ContentPlan, error)
}

type ContentCache interface {
	Get(ctx context.Context, topic string) (domain.ContentPlan, bool, error)
	Set(ctx context.Context, topic string, plan domain.ContentPlan) error
}
