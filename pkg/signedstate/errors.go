package signedstate

import "errors"

var (
	ErrInvalidSignedState        = errors.New("signedstate.invalid")
	ErrFailedToDecodeSignedState = errors.New("signedstate.failed_to_decode")
	ErrEmptyKey                  = errors.New("signedstate.empty_key")
	ErrEmptyPurpose              = errors.New("signedstate.empty_purpose")
	ErrPayloadNotStruct          = errors.New("signedstate.payload_not_struct")
	ErrReservedField             = errors.New("signedstate.reserved_field")
	ErrSchema                    = errors.New("signedstate.schema")
)
