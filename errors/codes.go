package errors

// ErrorCode identifies a class of application error in API responses.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_HTTP_OK           ErrorCode = 200
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_CONFLICT          ErrorCode = 1005

	// Meetings
	ErrorCode_MEETING_NOT_FOUND        ErrorCode = 2000
	ErrorCode_MEETING_CREATE_FAILED    ErrorCode = 2001
	ErrorCode_MEETING_DELETE_FAILED    ErrorCode = 2002
	ErrorCode_MEETING_EMPTY_TRANSCRIPT ErrorCode = 2003

	// Action items
	ErrorCode_ACTION_ITEM_NOT_FOUND     ErrorCode = 3000
	ErrorCode_ACTION_ITEM_UPDATE_FAILED ErrorCode = 3001
	ErrorCode_CLARIFICATION_NOT_FOUND   ErrorCode = 3002
	ErrorCode_CLARIFICATION_ANSWERED    ErrorCode = 3003

	// Extraction
	ErrorCode_EXTRACTION_FAILED         ErrorCode = 4000
	ErrorCode_EXTRACTION_UNAVAILABLE    ErrorCode = 4001
	ErrorCode_EXTRACTION_QUOTA_EXCEEDED ErrorCode = 4002

	// Database
	ErrorCode_DATABASE_ERROR ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:               "UNSPECIFIED",
	ErrorCode_HTTP_OK:                   "OK",
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:          "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                 "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:            "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:         "PERMISSION_DENIED",
	ErrorCode_CONFLICT:                  "CONFLICT",
	ErrorCode_MEETING_NOT_FOUND:         "MEETING_NOT_FOUND",
	ErrorCode_MEETING_CREATE_FAILED:     "MEETING_CREATE_FAILED",
	ErrorCode_MEETING_DELETE_FAILED:     "MEETING_DELETE_FAILED",
	ErrorCode_MEETING_EMPTY_TRANSCRIPT:  "MEETING_EMPTY_TRANSCRIPT",
	ErrorCode_ACTION_ITEM_NOT_FOUND:     "ACTION_ITEM_NOT_FOUND",
	ErrorCode_ACTION_ITEM_UPDATE_FAILED: "ACTION_ITEM_UPDATE_FAILED",
	ErrorCode_CLARIFICATION_NOT_FOUND:   "CLARIFICATION_NOT_FOUND",
	ErrorCode_CLARIFICATION_ANSWERED:    "CLARIFICATION_ANSWERED",
	ErrorCode_EXTRACTION_FAILED:         "EXTRACTION_FAILED",
	ErrorCode_EXTRACTION_UNAVAILABLE:    "EXTRACTION_UNAVAILABLE",
	ErrorCode_EXTRACTION_QUOTA_EXCEEDED: "EXTRACTION_QUOTA_EXCEEDED",
	ErrorCode_DATABASE_ERROR:            "DATABASE_ERROR",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
