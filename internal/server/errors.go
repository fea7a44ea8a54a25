package server

import "github.com/PixPMusic/gopher-midihub/internal/apperr"

var errFull = apperr.ErrFull
