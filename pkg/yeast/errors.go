package yeast

import "github.com/shapestone/yeast/internal/yerr"

// ErrorCode classifies a failure returned by this package, mirroring the
// original implementation's thread-local errno values (see internal/yerr's
// doc comment for why that became a typed Go error instead of an ambient
// slot).
type ErrorCode = yerr.Code

const (
	EINVAL ErrorCode = yerr.EINVAL
	EILSEQ ErrorCode = yerr.EILSEQ
	EFAULT ErrorCode = yerr.EFAULT
	ENOMEM ErrorCode = yerr.ENOMEM
	EIO    ErrorCode = yerr.EIO
)
