// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// MessageError describes an issue encountered while deserializing a wire
// message. It implements the error interface.
type MessageError struct {
	Func        string
	Description string
}

// Error satisfies the error interface.
func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Description)
	}
	return e.Description
}

func messageError(f string, desc string) *MessageError {
	return &MessageError{Func: f, Description: desc}
}
