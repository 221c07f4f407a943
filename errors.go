/*
 * errors.go, part of gomatgen.
 *
 * Copyright 2026 The gomatgen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package matgen

import (
	"fmt"
	"strings"
)

// CError is the concrete error type of the matgen package. It implements the
// Error interface defined in interfaces.go.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, "/"))
}

// Decorate appends info to the decoration slice of the error and returns the
// slice. If info is the empty string, the slice is returned unchanged.
func (err *CError) Decorate(info string) []string {
	if info != "" {
		err.deco = append(err.deco, info)
	}
	return err.deco
}

// newError builds a CError with the given message, already decorated with the
// name of the function reporting it.
func newError(function, msg string) *CError {
	err := new(CError)
	err.msg = msg
	err.Decorate(function)
	return err
}

// errDecorate decorates err with info if err satisfies the Error interface,
// and otherwise wraps it in a CError carrying info.
func errDecorate(err error, info string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = &CError{err.Error(), []string{info}}
		return err2
	}
	err2.Decorate(info)
	return err2
}
