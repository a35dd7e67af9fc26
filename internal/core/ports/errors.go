package ports

import "errors"

// ErrDuplicateOrderNumber is returned by OrderRepository.Add when the order
// number is already taken.
var ErrDuplicateOrderNumber = errors.New("order number already exists")
