package core

import "errors"

var ErrRootNotFound = errors.New("steam install root not found")
var ErrSyntax = errors.New("malformed vdf document")
var ErrNotFound = errors.New("key not found")
var ErrWrongKind = errors.New("node has the wrong kind")
var ErrInvalidManifest = errors.New("invalid app manifest")
var ErrExecutableNotResolved = errors.New("no launch executable resolved")
var ErrBadStatus = errors.New("remote service returned a non-success status")
var ErrMissingData = errors.New("remote service response missing expected data")
