/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package iddef

import (
	"regexp"
	"strings"
)

var (
	trailingComment = regexp.MustCompile(`\s+#.*`)
	nonWord         = regexp.MustCompile(`\W+`)
	singleNonWord   = regexp.MustCompile(`^\W$`)

	constName   = regexp.MustCompile(`^[A-Z]\w*$`)
	localName   = regexp.MustCompile(`^[a-z_]\w*$`)
	globalName  = regexp.MustCompile(`^\$(?:\d+|[A-Za-z_]\w*|\W)$`)
	className   = regexp.MustCompile(`^@@[A-Za-z_]\w*$`)
	ivarName    = regexp.MustCompile(`^@[A-Za-z_]\w*$`)
	attrsetName = regexp.MustCompile(`^[A-Za-z_]\w*=$`)
)

// definitions is the result of parsing a predefined section.
type definitions struct {
	preserved  []string
	predefined map[string]string
	typed      map[Type][]string
	// order lists each type once, in the order of its first name.
	order []Type
}

func (d *definitions) addTyped(t Type, token string) {
	if _, ok := d.typed[t]; !ok {
		d.order = append(d.order, t)
	}
	d.typed[t] = append(d.typed[t], token)
}

// lines calls fn with the fields of every meaningful line of src.
func lines(src string, fn func(fields []string, line int) error) error {
	for i, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = trailingComment.ReplaceAllString(line, "")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(fields, i+1); err != nil {
			return err
		}
	}
	return nil
}

// parsePredefined reads "name [token]" lines.
func parsePredefined(src string) (*definitions, error) {
	defs := &definitions{
		predefined: make(map[string]string),
		typed:      make(map[Type][]string),
	}
	names := make(map[string]int)
	tokens := make(map[string]int)

	err := lines(src, func(fields []string, line int) error {
		if len(fields) > 2 {
			return &SyntaxError{"predefined", "expected name and optional token", line}
		}
		name := fields[0]
		token := name
		if len(fields) == 2 {
			token = fields[1]
		}
		token = tokenFor(token)
		if token == "" {
			return &SyntaxError{"predefined", "name " + name + " yields an empty token", line}
		}

		if name == "-" {
			defs.preserved = append(defs.preserved, token)
			return nil
		}
		if prev, ok := names[name]; ok {
			return &DuplicateNameError{name, line, prev}
		}
		if prev, ok := tokens[token]; ok {
			return &DuplicateNameError{token, line, prev}
		}
		names[name] = line
		tokens[token] = line

		text := name
		if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
			// A quoted name stands in for a C literal and has no text.
			text = ""
		}

		switch {
		case constName.MatchString(name):
			return &UnsupportedNameError{name, "constant", line}
		case localName.MatchString(name):
			defs.addTyped(Local, token)
		case globalName.MatchString(name):
			defs.addTyped(Global, token)
		case className.MatchString(name):
			return &UnsupportedNameError{name, "class variable", line}
		case ivarName.MatchString(name):
			return &UnsupportedNameError{name, "instance variable", line}
		case attrsetName.MatchString(name):
			return &UnsupportedNameError{name, "attribute assignment", line}
		default:
			defs.preserved = append(defs.preserved, token)
		}
		defs.predefined[token] = text
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// tokenFor turns a name or an explicit token into an identifier-like token.
func tokenFor(token string) string {
	if strings.Contains(token, "#") {
		return "_" + nonWord.ReplaceAllString(token, "_")
	}
	token = strings.Replace(token, "?", "P", 1)
	if c := token[0]; c >= 'a' && c <= 'z' {
		token = strings.ToUpper(token[:1]) + token[1:]
	}
	switch {
	case strings.HasPrefix(token, "$"):
		token = "_G_" + token[1:]
	case strings.HasPrefix(token, "@@"):
		token = "_C_" + token[2:]
	case strings.HasPrefix(token, "@"):
		token = "_I_" + token[1:]
	}
	return nonWord.ReplaceAllString(token, "")
}

// parseTokenOps reads "id op [token]" lines. An operator spelled with a
// single non-word character gets no token unless one is given.
func parseTokenOps(src string) ([]Operator, error) {
	var ops []Operator
	err := lines(src, func(fields []string, line int) error {
		if len(fields) < 2 || len(fields) > 3 {
			return &SyntaxError{"token_ops", "expected id, op and optional token", line}
		}
		op := Operator{ID: fields[0], Op: fields[1]}
		switch {
		case len(fields) == 3:
			op.Token = fields[2]
		case !singleNonWord.MatchString(op.Op):
			op.Token = op.ID
		}
		ops = append(ops, op)
		return nil
	})
	return ops, err
}
