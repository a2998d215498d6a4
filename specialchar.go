// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import "strings"

// specialChars are the characters that force a specification through a
// compiled pattern instead of plain string equality.
const specialChars = `.|*?+(){}[]^$\%`

// HasSpecialChar reports whether spec contains any character that would
// require a regular expression to match it. When it returns false the
// specification can be compared with simple string equality.
func HasSpecialChar(spec string) bool {
	return strings.ContainsAny(spec, specialChars)
}
