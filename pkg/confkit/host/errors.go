package host

import "errors"

var errNoFont = errors.New("no font configured; set Options.FontPath or CONFKIT_FONT")
