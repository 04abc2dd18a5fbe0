package model

import "github.com/pkg/errors"

// ErrInvalidArgument is returned for non-positive board sizes and negative seed counts
var ErrInvalidArgument = errors.New("invalid argument")
