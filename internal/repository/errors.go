package repository

import "errors"

var ErrNotFound = errors.New("ключ не найден")
var ErrClosed = errors.New("хранилище закрыто")
