package errors

// CatalogKind classifies failures at the catalog network boundary
type CatalogKind string

// Catalog error kinds
const (
	KindNone     CatalogKind = ""
	KindNotFound CatalogKind = "not_found"
	KindNetwork  CatalogKind = "network"
	KindDecode   CatalogKind = "decode"
)

// CatalogNotFoundf reports a resource the catalog does not have
func CatalogNotFoundf(format string, args ...any) *Error {
	e := NotFoundf(format, args...)
	e.Kind = KindNotFound
	return e
}

// CatalogNetwork reports a request that could not be completed. Timeouts
// carry CodeDeadlineExceeded so callers can tell them apart while still
// treating them as network errors. err may be nil.
func CatalogNetwork(err error, timedOut bool, message string) *Error {
	code := CodeUnavailable
	if timedOut {
		code = CodeDeadlineExceeded
	}

	e := New(code, message)
	if err != nil {
		e = WrapWithCode(err, code, message)
	}
	e.Kind = KindNetwork
	return e
}

// CatalogDecode reports a response body that could not be parsed
func CatalogDecode(err error, message string) *Error {
	e := New(CodeDataLoss, message)
	if err != nil {
		e = WrapWithCode(err, CodeDataLoss, message)
	}
	e.Kind = KindDecode
	return e
}

// CatalogKindOf returns the catalog kind of err. Errors without a kind are
// classified by code, so a plain NotFound still counts as one.
func CatalogKindOf(err error) CatalogKind {
	if err == nil {
		return KindNone
	}
	if e, ok := find(err); ok && e.Kind != KindNone {
		return e.Kind
	}

	switch GetCode(err) {
	case CodeNotFound:
		return KindNotFound
	case CodeUnavailable, CodeDeadlineExceeded:
		return KindNetwork
	case CodeDataLoss:
		return KindDecode
	default:
		return KindNone
	}
}

// IsNetwork reports whether err is a catalog network failure, timeouts included
func IsNetwork(err error) bool {
	return CatalogKindOf(err) == KindNetwork
}

// IsDecode reports whether err is a catalog decode failure
func IsDecode(err error) bool {
	return CatalogKindOf(err) == KindDecode
}
