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

package xrd

import (
	"fmt"

	matgen "github.com/matgen-dev/gomatgen"
)

// Error is the concrete error type of the xrd package. It satisfies the
// matgen.Error interface.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return err.message
}

// Decorate appends info to the decoration slice and returns the slice. An
// empty string only retrieves the current value.
func (err *Error) Decorate(info string) []string {
	if info != "" {
		err.deco = append(err.deco, info)
	}
	return err.deco
}

func errorf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

func errDecorate(err error, info string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(matgen.Error); ok {
		e.Decorate(info)
		return e
	}
	return &Error{message: err.Error(), deco: []string{info}}
}
