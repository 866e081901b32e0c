package i18n

import "errors"

// ErrEmptyKey indicates T was called without a lookup key.
var ErrEmptyKey = errors.New("i18n: empty lookup key")

// ErrMissingParams indicates the resolved string carries placeholders but no
// params were supplied.
var ErrMissingParams = errors.New("i18n: string contains placeholders but no params given")

// ErrMissingPlaceholder indicates a placeholder in the resolved string has no
// matching entry in the supplied params.
var ErrMissingPlaceholder = errors.New("i18n: missing placeholder value")

// ErrMissingOtherForm indicates a pluralised key lacks the mandatory "other" form.
var ErrMissingOtherForm = errors.New(`i18n: missing "other" plural form`)
