package service

import "errors"

// ErrInputLocked indicates an attempt to replace a birth date that was
// supplied by parameter.
var ErrInputLocked = errors.New("birth date was supplied by parameter and cannot be changed")
