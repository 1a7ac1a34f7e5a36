package errors

type Code string

const (
	CodeUnknown               Code = "UNKNOWN"
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeNotFound              Code = "NOT_FOUND"
	CodeDuplicateRelationship Code = "DUPLICATE_RELATIONSHIP"
	CodeInvalidState          Code = "INVALID_STATE"
	CodeAlreadyMember         Code = "ALREADY_MEMBER"
	CodeNotAMember            Code = "NOT_A_MEMBER"
	CodePermissionDenied      Code = "PERMISSION_DENIED"
	CodeUnauthenticated       Code = "UNAUTHENTICATED"
	CodeInternal              Code = "INTERNAL"
)
