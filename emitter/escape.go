// Copyright (c) 2024 The gbfcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emitter

import "strings"

const hexDigits = "0123456789abcdef"

var stringEscapes = map[byte]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// EscapeString renders s as it must appear inside a double-quoted GS2
// string literal (spec.md §4.3). Bytes with no named escape, but outside
// the printable ASCII range [0x20, 0x7E], are rendered as \xNN so that
// parse(emit(ast)) == ast holds (spec.md §6.2, invariant L1) — matching
// original_source's utils.rs, which escapes the same way via
// std::ascii::escape_default. GS2 source is not guaranteed to be valid
// UTF-8, so this operates byte-wise rather than rune-wise.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := stringEscapes[c]; ok {
			b.WriteString(esc)
			continue
		}
		if c < 0x20 || c == 0x7F || c >= 0x80 {
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xF])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
