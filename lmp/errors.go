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

package lmp

import (
	"fmt"
	"strings"
)

// Error is the concrete error type of the lmp package. It carries the file
// name (when known) and the line number (when the error is tied to one), and
// satisfies the matgen.Error interface.
type Error struct {
	message  string
	filename string
	line     int
	deco     []string
}

func (err *Error) Error() string {
	switch {
	case err.filename != "" && err.line > 0:
		return fmt.Sprintf("%s:%d: %s", err.filename, err.line, err.message)
	case err.filename != "":
		return fmt.Sprintf("%s: %s", err.filename, err.message)
	case err.line > 0:
		return fmt.Sprintf("line %d: %s", err.line, err.message)
	}
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

// Line returns the 1-based line the error refers to, or 0 if it isn't tied
// to one.
func (err *Error) Line() int {
	return err.line
}

// FileName returns the name of the file the error refers to, if known.
func (err *Error) FileName() string {
	return err.filename
}

func errorf(line int, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), line: line}
}

//attach the filename to every *Error in the chain that lacks one
func named(err error, filename string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok && e.filename == "" {
		e.filename = filename
	}
	return err
}

func decorated(err error, info string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(info)
		return e
	}
	return &Error{message: err.Error(), deco: []string{info}}
}

// Violations formats a list of validation errors as one multi-line string.
func Violations(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}
