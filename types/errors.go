package types

import "errors"

// exported errors
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSubject     = errors.New("invalid subject, it should be a user or a group")
	ErrInvalidScope       = errors.New("invalid scope, it should be one of Tenant, Folder, and Report")
	ErrMissingTarget      = errors.New("report scoped assignment needs a target report")
	ErrUnknownTenant      = errors.New("unknown tenant")
	ErrUnknownCapability  = errors.New("unknown capability")
	ErrPermissionSetInUse = errors.New("permission set is referenced by existing assignments")
)
