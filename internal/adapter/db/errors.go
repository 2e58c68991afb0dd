package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrNoReferencedRow  = 1452
	mysqlErrLockWaitTimeout  = 1205
	mysqlErrDeadlockDetected = 1213
)

var uniqueKeyErrors = []struct {
	key string
	err error
}{
	{key: "uq_organizations_slug", err: domain.ErrOrganizationSlugTaken},
	{key: "uq_departments_org_name", err: domain.ErrDepartmentNameTaken},
	{key: "uq_projects_org_slug", err: domain.ErrProjectSlugTaken},
	{key: "uq_users_email", err: domain.ErrEmailTaken},
}

// mapWriteError turns constraint violations reported by MySQL into domain errors.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}

	switch mysqlErr.Number {
	case mysqlErrDuplicateEntry:
		for _, candidate := range uniqueKeyErrors {
			if strings.Contains(mysqlErr.Message, candidate.key) {
				return candidate.err
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, mysqlErr.Message)
	case mysqlErrNoReferencedRow:
		return fmt.Errorf("%w: %s", domain.ErrInvalidReference, mysqlErr.Message)
	case mysqlErrDeadlockDetected, mysqlErrLockWaitTimeout:
		return fmt.Errorf("%w: %s", domain.ErrInternal, mysqlErr.Message)
	}

	return err
}

func mapReadError(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}
