package repository

import (
	"errors"
	"fmt"

	"tabebui/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL のエラーコード
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateDBError は制約違反をアプリケーションのエラーに変換する。
// それ以外のエラーはそのまま返す。
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", model.ErrInvalidInput, pgErr.Detail)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", model.ErrConflict, pgErr.Detail)
		}
	}
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	}
	return err
}
