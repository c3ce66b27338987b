package util

import (
	"database/sql"
	"strings"
)

// StringToNullString converts a string to sql.NullString.
// A blank string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringToString returns "" for NULL.
func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
