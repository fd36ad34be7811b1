// Package common contains shared sentinel errors and small helpers used
// across Maré Viva components.
package common

import "errors"

// ErrNotFound is returned by repositories when the requested record does not
// exist. Services translate it into a user-facing not-found result.
var ErrNotFound = errors.New("record not found")
