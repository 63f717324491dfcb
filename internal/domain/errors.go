package domain

import "errors"

var ErrToolNotFound = errors.New("tool not found")
