package vector

import (
	"errors"

	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	ErrSelectorInvalid = errors.New(f("selector invalid"))
)
