package db

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDup reports whether err is a MongoDB duplicate-key error (E11000),
// which signals a unique-index violation.
func IsDup(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return strings.Contains(err.Error(), "E11000")
}
