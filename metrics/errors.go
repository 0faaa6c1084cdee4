package metrics

import "errors"

var errNilRegisterer = errors.New("nil prometheus registerer")
