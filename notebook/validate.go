// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notebook

import "strings"

// FormErrors holds one message per invalid field, empty when valid
type FormErrors struct {
	Title   string
	Content string
}

func (e FormErrors) OK() bool {
	return e.Title == "" && e.Content == ""
}

// ValidateNote checks the note form before anything is sent
func ValidateNote(title, content string) FormErrors {
	var errs FormErrors
	if strings.TrimSpace(title) == "" {
		errs.Title = "Title is required"
	}
	if strings.TrimSpace(content) == "" {
		errs.Content = "Content is required"
	}
	return errs
}
