package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/sqlite-api/internal/errs"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// constraintTarget matches the "<table>.<column>" part of messages like
// "UNIQUE constraint failed: users.email". Composite constraints list
// several pairs; the first one wins.
var constraintTarget = regexp.MustCompile(`constraint failed: ([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)`)

// ErrCode reports the Code of err, or Other when err is not a SQLite error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var driverErr sqlite3.Error
	if errors.As(err, &driverErr) {
		return MapCode(driverErr.Code, driverErr.ExtendedCode)
	}

	return Other
}

// ConvertSQLiteError converts a raw sqlite3.Error into an *Error.
func ConvertSQLiteError(src sqlite3.Error) *Error {
	sqlErr := &Error{
		Code:         MapCode(src.Code, src.ExtendedCode),
		DatabaseCode: int(src.Code),
		ExtendedCode: int(src.ExtendedCode),
		Message:      src.Error(),
		driverErr:    src,
	}

	if m := constraintTarget.FindStringSubmatch(sqlErr.Message); len(m) == 3 {
		sqlErr.TableName = m[1]
		sqlErr.ColumnName = m[2]
	}

	return sqlErr
}

// generateErrorCode builds codes like USER_ALREADY_EXISTS from the table
// name and the violation kind.
func generateErrorCode(tableName string, errType Code) string {
	if errType == Unavailable {
		return "DATABASE_UNAVAILABLE"
	}

	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation, PrimaryKeyViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName)
	fieldName := humanizeText(sqlErr.ColumnName)

	switch sqlErr.Code {
	case UniqueViolation, PrimaryKeyViolation:
		if fieldName == "" {
			fieldName = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName, fieldName)

	case NotNullViolation:
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case CheckViolation:
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case Unavailable:
		return "The database is currently unavailable"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName singularizes a table name: "users" -> "User".
func getEntityName(tableName string) string {
	if tableName == "" {
		return "record"
	}

	entity := tableName
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a low-level storage error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - sqlite3.Error: classified; constraint and availability failures get a
//     specific code and sanitized message, everything else a generic 500
//   - sql.ErrNoRows: 404
//   - anything else: generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var driverErr sqlite3.Error
	if errors.As(err, &driverErr) {
		sqlErr := ConvertSQLiteError(driverErr)

		if sqlErr.Code == Other {
			return errs.NewInternalServerError()
		}

		return errs.NewStorageError(
			formatUserFriendlyMessage(sqlErr),
			generateErrorCode(sqlErr.TableName, sqlErr.Code),
		)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
